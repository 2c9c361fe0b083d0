// Code generated by hand. DO NOT EDIT.

package a

func generated() int {
	x := 1

	{
		x := 2
		_ = x
	}

	return x
}
