package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Func — функция освобождения одного ресурса.
type Func func(ctx context.Context) error

// Closer собирает функции освобождения ресурсов и закрывает их в порядке,
// обратном регистрации: последний открытый ресурс закрывается первым.
type Closer struct {
	mu            sync.Mutex
	once          sync.Once
	funcs         []Func
	forcedTimeout time.Duration
}

// NewCloser создаёт Closer.
// forcedTimeout — бюджет на принудительное закрытие ресурсов,
// не успевших закрыться до отмены контекста в Close.
func NewCloser(forcedTimeout time.Duration) *Closer {
	const defaultForcedTimeout = 2 * time.Second

	if forcedTimeout <= 0 {
		forcedTimeout = defaultForcedTimeout
	}

	return &Closer{forcedTimeout: forcedTimeout}
}

// Add регистрирует функцию закрытия. Потокобезопасно.
func (c *Closer) Add(f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, f)
}

// Close закрывает все зарегистрированные ресурсы в LIFO-порядке.
// Повторные вызовы не выполняют ничего и возвращают nil.
// При отмене контекста оставшиеся ресурсы закрываются принудительно
// и параллельно, с собственным таймаутом.
func (c *Closer) Close(ctx context.Context) error {
	var closeErr error

	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.mu.Unlock()

		remaining, errs := c.closeGracefully(ctx, funcs)
		if len(remaining) > 0 {
			errs = append(errs, fmt.Errorf("context cancelled with %d of %d resources still open", len(remaining), len(funcs)))
			errs = append(errs, c.closeForced(remaining)...)
		}

		closeErr = errors.Join(errs...)
	})

	return closeErr
}

// closeGracefully закрывает ресурсы по одному, с конца списка.
// Возвращает ещё не закрытые функции, если контекст отменился раньше.
func (c *Closer) closeGracefully(ctx context.Context, funcs []Func) ([]Func, []error) {
	var errs []error

	for i := len(funcs) - 1; i >= 0; i-- {
		done := make(chan error, 1)
		f := funcs[i]

		go func() {
			done <- f(ctx)
		}()

		select {
		case err := <-done:
			if err != nil {
				errs = append(errs, err)
			}
		case <-ctx.Done():
			return funcs[:i+1], errs
		}
	}

	return nil, errs
}

// closeForced параллельно закрывает оставшиеся ресурсы.
func (c *Closer) closeForced(funcs []Func) []error {
	ctx, cancel := context.WithTimeout(context.Background(), c.forcedTimeout)
	defer cancel()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, f := range funcs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := f(ctx); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("forced: %w", err))
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return errs
}
