package levels

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Host is what a level script can do to the scene.
type Host interface {
	// Bounds returns the camera half extents in world units.
	Bounds() (halfW, halfH float64)
	// Floor tiles a prefab over the bottom rows of the view.
	Floor(prefab string, lines int) (int, error)
	// Spawn builds a prefab at a world-unit position.
	Spawn(prefab string, x, y float64) error
}

// every level script defines build(engine); a script without it fails to
// compile on the unresolved reference
const buildDispatch = `
build(__engine)
`

// RunScript loads and runs a level script against host.
func RunScript(name string, host Host) error {
	src, err := LoadScript(name)
	if err != nil {
		return fmt.Errorf("levels: load %q: %w", name, err)
	}
	return Run(name, src, host)
}

// Run compiles src and calls its build function with the engine map.
func Run(name string, src []byte, host Host) error {
	if host == nil {
		return fmt.Errorf("levels: run %q: nil host", name)
	}

	full := string(src) + "\n" + buildDispatch
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__engine", map[string]any{})
	script.SetImports(stdlib.GetModuleMap("math", "fmt"))

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("levels: compile %q: %w", name, err)
	}

	var hostErr error
	if err := compiled.Set("__engine", buildEngine(host, &hostErr)); err != nil {
		return fmt.Errorf("levels: run %q: %w", name, err)
	}
	if err := compiled.Run(); err != nil {
		if hostErr != nil {
			return fmt.Errorf("levels: run %q: %w", name, hostErr)
		}
		return fmt.Errorf("levels: run %q: %w", name, err)
	}
	return nil
}

func buildEngine(host Host, hostErr *error) *tengo.ImmutableMap {
	fail := func(err error) (tengo.Object, error) {
		*hostErr = err
		return nil, err
	}

	values := map[string]tengo.Object{}

	values["bounds"] = &tengo.UserFunction{Name: "bounds", Value: func(args ...tengo.Object) (tengo.Object, error) {
		w, h := host.Bounds()
		return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: w}, &tengo.Float{Value: h}}}, nil
	}}

	values["floor"] = &tengo.UserFunction{Name: "floor", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		prefab, ok := tengo.ToString(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "prefab", Expected: "string", Found: args[0].TypeName()}
		}
		lines, ok := tengo.ToInt(args[1])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "lines", Expected: "int", Found: args[1].TypeName()}
		}
		n, err := host.Floor(prefab, lines)
		if err != nil {
			return fail(err)
		}
		return &tengo.Int{Value: int64(n)}, nil
	}}

	values["spawn"] = &tengo.UserFunction{Name: "spawn", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 3 {
			return nil, tengo.ErrWrongNumArguments
		}
		prefab, ok := tengo.ToString(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "prefab", Expected: "string", Found: args[0].TypeName()}
		}
		x, ok := tengo.ToFloat64(args[1])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "x", Expected: "float", Found: args[1].TypeName()}
		}
		y, ok := tengo.ToFloat64(args[2])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "y", Expected: "float", Found: args[2].TypeName()}
		}
		if err := host.Spawn(prefab, x, y); err != nil {
			return fail(err)
		}
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}
