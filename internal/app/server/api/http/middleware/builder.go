package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Func - мидлварь huma.
type Func = func(ctx huma.Context, next func(huma.Context))

// Chain собирает наборы мидлварей для групп операций. Базовые мидлвари
// идут первыми в каждом наборе.
type Chain struct {
	base huma.Middlewares
}

// NewChain создает цепочку с общими для всех групп мидлварями.
func NewChain(base ...Func) *Chain {
	return &Chain{base: append(huma.Middlewares{}, base...)}
}

// With возвращает новый набор: базовые мидлвари, затем extra.
// Набор не разделяет память с цепочкой и другими наборами.
func (c *Chain) With(extra ...Func) huma.Middlewares {
	out := make(huma.Middlewares, 0, len(c.base)+len(extra))
	out = append(out, c.base...)
	return append(out, extra...)
}
