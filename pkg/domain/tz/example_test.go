package tz_test

import (
	"fmt"

	"iltz/pkg/domain/tz"
)

func ExampleParseString() {
	id, err := tz.ParseString("37015971")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(id, id.Valid())

	_, err = tz.ParseString("1234567890")
	fmt.Println(err)
	// Output:
	// 037015971 true
	// invalid ID length: 1234567890
}

func ExampleGenerate() {
	for _, id := range tz.Generate(37015955, 37015985) {
		fmt.Println(id)
	}
	// Output:
	// 037015955
	// 037015963
	// 037015971
	// 037015989
}
