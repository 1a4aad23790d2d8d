package fn_test

import (
	"fmt"
	"pipekit/fn"
)

func ExampleCurry() {
	area, _ := fn.Curry(fn.Signature{Params: []fn.Param{
		fn.Required("w"),
		fn.Required("h"),
		fn.Optional("unit", "m2"),
	}}, func(args []any) (any, error) {
		return fmt.Sprintf("%d%s", args[0].(int)*args[1].(int), args[2]), nil
	}, fn.WithName("area"))

	wide, _ := area.Call(10)
	fmt.Println(wide)

	v, _ := wide.(*fn.Curried).Call(3, fn.Kw("unit", "ft2"))
	fmt.Println(v)

	// Output:
	// area(w=10, h, unit=m2?)
	// 30ft2
}

func ExamplePipeCalls() {
	parse, _ := fn.CurryFunc(func(s string) (int, error) {
		var n int
		_, err := fmt.Sscanf(s, "%d", &n)
		return n, err
	})
	square := fn.Func(func(args ...any) (any, error) {
		n := args[0].(int)
		return n * n, nil
	})

	v, err := fn.PipeCalls("12", parse, square)
	fmt.Println(v, err)

	// Output:
	// 144 <nil>
}
