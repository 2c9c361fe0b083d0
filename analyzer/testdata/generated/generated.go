// Code generated by hand. DO NOT EDIT.

package generated

func generated() int {
	x := 1

	{
		x := 2 // want `declaration of "x" shadows declaration at line 6 \(bt:shadow\)`
		_ = x
	}

	return x // want `variable "x" used after previously shadowed \(bt:uas\)`
}
