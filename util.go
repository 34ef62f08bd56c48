package argio

import "golang.org/x/exp/constraints"

func toSortFunc[T any, R constraints.Ordered](f func(T) R) func(T, T) int {
	return func(lhs T, rhs T) int {
		l, r := f(lhs), f(rhs)
		switch {
		case l < r:
			return -1
		case l > r:
			return 1
		default:
			return 0
		}
	}
}
