package gen

import (
	"fmt"
	"go/types"

	"github.com/dave/jennifer/jen"
)

// typeExpr renders a declared field type as a jennifer expression, qualifying
// named types from other packages by import path. samePkg suppresses
// qualification for types declared in the output package itself.
func typeExpr(t types.Type, samePkg string) (*jen.Statement, error) {
	switch tt := t.(type) {
	case *types.Basic:
		if tt.Kind() == types.UnsafePointer {
			return jen.Qual("unsafe", "Pointer"), nil
		}

		return jen.Id(tt.Name()), nil

	case *types.Named:
		return namedExpr(tt, samePkg)

	case *types.Pointer:
		elem, err := typeExpr(tt.Elem(), samePkg)
		if err != nil {
			return nil, err
		}

		return jen.Op("*").Add(elem), nil

	case *types.Slice:
		elem, err := typeExpr(tt.Elem(), samePkg)
		if err != nil {
			return nil, err
		}

		return jen.Index().Add(elem), nil

	case *types.Array:
		elem, err := typeExpr(tt.Elem(), samePkg)
		if err != nil {
			return nil, err
		}

		return jen.Index(jen.Lit(int(tt.Len()))).Add(elem), nil

	case *types.Map:
		key, err := typeExpr(tt.Key(), samePkg)
		if err != nil {
			return nil, err
		}

		val, err := typeExpr(tt.Elem(), samePkg)
		if err != nil {
			return nil, err
		}

		return jen.Map(key).Add(val), nil

	case *types.Chan:
		elem, err := typeExpr(tt.Elem(), samePkg)
		if err != nil {
			return nil, err
		}

		switch tt.Dir() {
		case types.RecvOnly:
			return jen.Op("<-").Chan().Add(elem), nil
		case types.SendOnly:
			return jen.Chan().Op("<-").Add(elem), nil
		default:
			return jen.Chan().Add(elem), nil
		}

	case *types.Interface:
		if tt.Empty() {
			return jen.Any(), nil
		}

		return nil, fmt.Errorf("anonymous interface types are not supported; name the interface")

	case *types.Struct:
		return nil, fmt.Errorf("anonymous struct types are not supported; name the struct")

	default:
		return nil, fmt.Errorf("unsupported field type %s", t)
	}
}

// namedExpr renders a (possibly instantiated) named type.
func namedExpr(t *types.Named, samePkg string) (*jen.Statement, error) {
	obj := t.Obj()

	var s *jen.Statement
	if obj.Pkg() == nil || obj.Pkg().Path() == samePkg {
		// Universe types (error) and same-package types stay unqualified.
		s = jen.Id(obj.Name())
	} else {
		s = jen.Qual(obj.Pkg().Path(), obj.Name())
	}

	args := t.TypeArgs()
	if args == nil || args.Len() == 0 {
		return s, nil
	}

	idx := make([]jen.Code, 0, args.Len())

	for i := 0; i < args.Len(); i++ {
		arg, err := typeExpr(args.At(i), samePkg)
		if err != nil {
			return nil, err
		}

		idx = append(idx, arg)
	}

	return s.Index(jen.List(idx...)), nil
}
