package service

import "context"

// Result — итог одной асинхронной операции: либо Value, либо Err.
type Result[T any] struct {
	Value T
	Err   error
}

// Async запускает fn в отдельной горутине и возвращает канал, в который будет
// отправлен ровно один Result. Канал буферизован: горутина не зависает, если
// результат никто не читает. Передача результата в UI-контекст — забота вызывающего.
func Async[T any](ctx context.Context, fn func(context.Context) (T, error)) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		defer close(ch)
		v, err := fn(ctx)
		ch <- Result[T]{Value: v, Err: err}
	}()
	return ch
}

// AsyncErr — вариант Async для операций, которые возвращают только ошибку.
func AsyncErr(ctx context.Context, fn func(context.Context) error) <-chan Result[struct{}] {
	return Async(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
}
