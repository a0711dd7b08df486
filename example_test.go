package casting_test

import (
	"fmt"
	"math"

	"go.dw1.io/casting"
)

func ExampleFrom() {
	fmt.Println(casting.From[uint8](int16(300))) // keeps the low bits
	fmt.Println(casting.From[int8](math.Inf(1))) // saturates
	// Output:
	// 44
	// 127
}

func ExampleInto() {
	var port uint16 = casting.Into[uint16](8080)

	fmt.Println(port)
	// Output: 8080
}

func ExampleFromChar() {
	fmt.Println(casting.FromChar[uint32]('G'))
	// Output: 71
}

type celsius float32

type fahrenheit float64

func (f *fahrenheit) CastFrom(c celsius) {
	*f = fahrenheit(c)*9/5 + 32
}

func ExampleAs() {
	fmt.Println(casting.As[fahrenheit](celsius(20)))
	// Output: 68
}
