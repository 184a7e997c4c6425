package component

import (
	"sort"

	"github.com/tungetti/hue/internal/errors"
)

// Generator produces a component's tokens from Args.
type Generator func(Args) Stateful

// registry maps component names to generators. A generator returns an
// untyped nil when tokens are unavailable.
var registry = map[string]Generator{
	"card": func(a Args) Stateful {
		return orNil(Card(a.Tokens, a.Mode, a.Variant, a.Size))
	},
	"proCard": func(a Args) Stateful {
		return orNil(ProCard(a.Tokens, a.Mode, a.Variant, a.Size, a.Gradient))
	},
	"input": func(a Args) Stateful {
		return orNil(Input(a.Tokens, a.Mode, a.Variant, a.Size))
	},
	"textarea": func(a Args) Stateful {
		return orNil(Textarea(a.Tokens, a.Mode, a.Variant, a.Size))
	},
	"icon": func(a Args) Stateful {
		return orNil(Icon(a.Tokens, a.Mode, a.Variant, a.Size, a.Gradient))
	},
	"slider": func(a Args) Stateful {
		return orNil(Slider(a.Tokens, a.Mode, a.Variant, a.Size))
	},
	"check": func(a Args) Stateful {
		return orNil(Check(a.Tokens, a.Mode, a.Variant, a.Size))
	},
	"dialog": func(a Args) Stateful {
		return orNil(Dialog(a.Tokens, a.Mode, a.Variant, a.Size))
	},
	"loadingLogo": func(a Args) Stateful {
		return orNil(LoadingLogo(a.Tokens, a.Mode, a.Variant, a.Size, a.Gradient))
	},
	"navbar": func(a Args) Stateful {
		return orNil(Navbar(a.Tokens, a.Mode, a.Variant, a.Size))
	},
	"tableCell": func(a Args) Stateful {
		return orNil(TableCell(a.Tokens, a.Mode, a.Variant, a.Size))
	},
}

// orNil converts a typed nil pointer into an untyped nil interface.
func orNil[T any, P interface {
	*T
	Stateful
}](p P) Stateful {
	if p == nil {
		return nil
	}
	return p
}

// Names returns the registered component names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Generate runs the named generator. It fails with ErrUnknownComponent for an
// unregistered name and with ErrTokensUnavailable when a.Tokens is nil.
func Generate(name string, a Args) (Stateful, error) {
	gen, ok := registry[name]
	if !ok {
		return nil, errors.Newf(errors.NotFound, "unknown component %q", name).WithOp("component.Generate")
	}
	out := gen(a)
	if out == nil {
		return nil, errors.Wrap(errors.Unavailable, "tokens not available", errors.ErrTokensUnavailable).WithOp("component.Generate")
	}
	return out, nil
}
