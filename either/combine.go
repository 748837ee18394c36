package either

import "github.com/goodmind/funfix/pair"

// Applicative fan-in over 2..6 Eithers sharing the same left type: the
// combining function is applied when every argument is a Right;
// otherwise the first Left in argument order is returned. The scan is
// strictly left-to-right and short-circuits at the first failure.

// Map2 combines two Eithers, first Left wins.
func Map2[L, A, B, C any](ea Either[L, A], eb Either[L, B], fn func(A, B) C) Either[L, C] {
	if !ea.isRight {
		return Left[L, C](ea.left)
	}
	if !eb.isRight {
		return Left[L, C](eb.left)
	}
	return Right[L, C](fn(ea.right, eb.right))
}

// Map3 combines three Eithers, first Left wins.
func Map3[L, A, B, C, D any](
	ea Either[L, A], eb Either[L, B], ec Either[L, C],
	fn func(A, B, C) D,
) Either[L, D] {
	if !ea.isRight {
		return Left[L, D](ea.left)
	}
	if !eb.isRight {
		return Left[L, D](eb.left)
	}
	if !ec.isRight {
		return Left[L, D](ec.left)
	}
	return Right[L, D](fn(ea.right, eb.right, ec.right))
}

// Map4 combines four Eithers, first Left wins.
func Map4[L, A, B, C, D, E any](
	ea Either[L, A], eb Either[L, B], ec Either[L, C], ed Either[L, D],
	fn func(A, B, C, D) E,
) Either[L, E] {
	if !ea.isRight {
		return Left[L, E](ea.left)
	}
	if !eb.isRight {
		return Left[L, E](eb.left)
	}
	if !ec.isRight {
		return Left[L, E](ec.left)
	}
	if !ed.isRight {
		return Left[L, E](ed.left)
	}
	return Right[L, E](fn(ea.right, eb.right, ec.right, ed.right))
}

// Map5 combines five Eithers, first Left wins.
func Map5[L, A, B, C, D, E, F any](
	ea Either[L, A], eb Either[L, B], ec Either[L, C], ed Either[L, D], ee Either[L, E],
	fn func(A, B, C, D, E) F,
) Either[L, F] {
	if !ea.isRight {
		return Left[L, F](ea.left)
	}
	if !eb.isRight {
		return Left[L, F](eb.left)
	}
	if !ec.isRight {
		return Left[L, F](ec.left)
	}
	if !ed.isRight {
		return Left[L, F](ed.left)
	}
	if !ee.isRight {
		return Left[L, F](ee.left)
	}
	return Right[L, F](fn(ea.right, eb.right, ec.right, ed.right, ee.right))
}

// Map6 combines six Eithers, first Left wins.
func Map6[L, A, B, C, D, E, F, G any](
	ea Either[L, A], eb Either[L, B], ec Either[L, C], ed Either[L, D], ee Either[L, E], ef Either[L, F],
	fn func(A, B, C, D, E, F) G,
) Either[L, G] {
	if !ea.isRight {
		return Left[L, G](ea.left)
	}
	if !eb.isRight {
		return Left[L, G](eb.left)
	}
	if !ec.isRight {
		return Left[L, G](ec.left)
	}
	if !ed.isRight {
		return Left[L, G](ed.left)
	}
	if !ee.isRight {
		return Left[L, G](ee.left)
	}
	if !ef.isRight {
		return Left[L, G](ef.left)
	}
	return Right[L, G](fn(ea.right, eb.right, ec.right, ed.right, ee.right, ef.right))
}

// Zip pairs up two Eithers, first Left wins.
func Zip[L, A, B any](ea Either[L, A], eb Either[L, B]) Either[L, pair.Pair[A, B]] {
	return Map2(ea, eb, pair.New[A, B])
}
