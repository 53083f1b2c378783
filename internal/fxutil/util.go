package fxutil

import "go.uber.org/fx"

// AsIface provides the result of constructor as TIface only.
func AsIface[TIface any](constructor interface{}) interface{} {
	return fx.Annotate(constructor, fx.As(new(TIface)))
}
