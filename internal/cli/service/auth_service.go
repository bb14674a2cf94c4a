package service

import (
	"context"

	"InventoryManagement/internal/cli/auth"
)

// AuthService описывает юзкейс-уровень аутентификации для CLI. Реализуется auth.Manager.
type AuthService interface {
	// Authenticate выполняет вход; persist сохраняет учётные данные для повторного входа.
	Authenticate(ctx context.Context, username, password string, persist bool) error

	// AuthenticateFromStored входит с ранее сохранёнными учётными данными.
	AuthenticateFromStored(ctx context.Context) error

	// VerifySession проверяет текущий токен на сервере.
	VerifySession(ctx context.Context) auth.Status

	// Logout очищает сохранённые учётные данные и токен.
	Logout() error

	// Status возвращает текущее состояние входа.
	Status() auth.Status

	// Session даёт доступ к токену и реакции на 401.
	Session
}

// Session — то, что нужно InventoryClient от менеджера сессии.
type Session interface {
	// Token возвращает значение заголовка Cookie (пусто, если входа не было).
	Token() string
	// Expire вызывается на 401: сбрасывает состояние и запускает один фоновый повторный вход.
	Expire(ctx context.Context)
}

var _ AuthService = (*auth.Manager)(nil)
