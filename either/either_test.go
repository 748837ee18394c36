package either

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodmind/funfix"
)

func assertNoSuchElement(t *testing.T, op string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.True(t, funfix.IsNoSuchElement(r), "expected no-such-element panic, got %v", r)
		assert.Equal(t, op, r.(*funfix.NoSuchElementError).Op)
	}()
	fn()
}

func TestEitherConstructorsAndAccessors(t *testing.T) {
	t.Run("Left creates a left value", func(t *testing.T) {
		e := Left[string, int]("boom")
		assert.True(t, e.IsLeft())
		assert.False(t, e.IsRight())
		assert.Equal(t, "boom", e.Left())
	})

	t.Run("Right creates a right value", func(t *testing.T) {
		e := Right[string](42)
		assert.False(t, e.IsLeft())
		assert.True(t, e.IsRight())
		assert.Equal(t, 42, e.Right())
		assert.Equal(t, 42, e.Get())
	})

	t.Run("nil values are accepted on either side", func(t *testing.T) {
		var p *int
		assert.True(t, Left[*int, int](p).IsLeft())
		assert.True(t, Right[string](p).IsRight())
	})

	t.Run("Left on a Right panics", func(t *testing.T) {
		assertNoSuchElement(t, "Either.Left", func() {
			Right[string](1).Left()
		})
	})

	t.Run("Right on a Left panics", func(t *testing.T) {
		assertNoSuchElement(t, "Either.Right", func() {
			Left[string, int]("e").Right()
		})
	})

	t.Run("Get on a Left panics", func(t *testing.T) {
		assertNoSuchElement(t, "Either.Get", func() {
			Left[string, int]("e").Get()
		})
	})
}

func TestEitherDefaults(t *testing.T) {
	t.Run("GetOrElse", func(t *testing.T) {
		assert.Equal(t, 1, Right[string](1).GetOrElse(9))
		assert.Equal(t, 9, Left[string, int]("e").GetOrElse(9))
	})

	t.Run("GetOrElseL thunk only runs for Left", func(t *testing.T) {
		called := false
		v := Right[string](1).GetOrElseL(func() int { called = true; return 9 })
		assert.Equal(t, 1, v)
		assert.False(t, called)

		v = Left[string, int]("e").GetOrElseL(func() int { called = true; return 9 })
		assert.Equal(t, 9, v)
		assert.True(t, called)
	})
}

func TestEitherCombinators(t *testing.T) {
	inc := func(n int) int { return n + 1 }

	t.Run("Map transforms Right", func(t *testing.T) {
		assert.True(t, Map(Right[string](1), inc).Equals(Right[string](2)))
	})

	t.Run("Map passes Left through without invoking the mapper", func(t *testing.T) {
		called := false
		e := Map(Left[string, int]("e"), func(n int) int { called = true; return n })
		assert.True(t, e.Equals(Left[string, int]("e")))
		assert.False(t, called)
	})

	t.Run("MapLeft transforms Left only", func(t *testing.T) {
		upper := func(s string) string { return s + "!" }
		assert.True(t, MapLeft(Left[string, int]("e"), upper).Equals(Left[string, int]("e!")))
		assert.True(t, MapLeft(Right[string](1), upper).Equals(Right[string](1)))
	})

	t.Run("FlatMap chains Right", func(t *testing.T) {
		safeDiv := func(n int) Either[string, int] {
			if n == 0 {
				return Left[string, int]("div by zero")
			}
			return Right[string](100 / n)
		}
		assert.True(t, FlatMap(Right[string](4), safeDiv).Equals(Right[string](25)))
		assert.True(t, FlatMap(Right[string](0), safeDiv).Equals(Left[string, int]("div by zero")))
		assert.True(t, FlatMap(Left[string, int]("e"), safeDiv).Equals(Left[string, int]("e")))
	})

	t.Run("FilterOrElse", func(t *testing.T) {
		even := func(n int) bool { return n%2 == 0 }
		zero := func() string { return "odd" }

		assert.True(t, Right[string](4).FilterOrElse(even, zero).Equals(Right[string](4)))
		assert.True(t, Right[string](3).FilterOrElse(even, zero).Equals(Left[string, int]("odd")))
		assert.True(t, Left[string, int]("e").FilterOrElse(even, zero).Equals(Left[string, int]("e")))
	})

	t.Run("Fold invokes exactly one branch", func(t *testing.T) {
		v := Fold(Right[string](5),
			func(s string) int { t.Fatal("onLeft invoked for Right"); return 0 },
			func(n int) int { return n * 2 },
		)
		assert.Equal(t, 10, v)

		v = Fold(Left[string, int]("e"),
			func(s string) int { return len(s) },
			func(n int) int { t.Fatal("onRight invoked for Left"); return 0 },
		)
		assert.Equal(t, 1, v)
	})

	t.Run("Match dispatches on side", func(t *testing.T) {
		var got int
		Right[string](3).Match(
			func(s string) { t.Fatal("onLeft invoked for Right") },
			func(n int) { got = n },
		)
		assert.Equal(t, 3, got)
	})
}

func TestEitherPredicates(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	t.Run("Contains is false for Left", func(t *testing.T) {
		assert.True(t, Right[string](2).Contains(2))
		assert.False(t, Right[string](2).Contains(3))
		assert.False(t, Left[string, int]("2").Contains(2))
	})

	t.Run("Exists is false for Left", func(t *testing.T) {
		assert.True(t, Right[string](2).Exists(even))
		assert.False(t, Right[string](3).Exists(even))
		assert.False(t, Left[string, int]("e").Exists(even))
	})

	t.Run("ForAll is vacuously true for Left", func(t *testing.T) {
		assert.True(t, Right[string](2).ForAll(even))
		assert.False(t, Right[string](3).ForAll(even))
		assert.True(t, Left[string, int]("e").ForAll(even))
	})

	t.Run("ForEach only fires for Right", func(t *testing.T) {
		var seen []int
		Right[string](1).ForEach(func(n int) { seen = append(seen, n) })
		Left[string, int]("e").ForEach(func(n int) { seen = append(seen, n) })
		assert.Equal(t, []int{1}, seen)
	})
}

func TestEitherSwapAndConversions(t *testing.T) {
	t.Run("Swap exchanges sides", func(t *testing.T) {
		assert.True(t, Left[string, int]("e").Swap().Equals(Right[int]("e")))
		assert.True(t, Right[string](1).Swap().Equals(Left[int, string](1)))
	})

	t.Run("ToOption keeps Right and discards Left", func(t *testing.T) {
		o := Right[string](5).ToOption()
		assert.True(t, o.NonEmpty())
		assert.Equal(t, 5, o.Get())
		assert.True(t, Left[string, int]("e").ToOption().IsEmpty())
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "Left(e)", Left[string, int]("e").String())
		assert.Equal(t, "Right(1)", Right[string](1).String())
	})
}

func TestEitherEquality(t *testing.T) {
	t.Run("same-side values compare structurally", func(t *testing.T) {
		assert.True(t, Left[[]int, int]([]int{1}).Equals(Left[[]int, int]([]int{1})))
		assert.True(t, Right[string]([]int{1}).Equals(Right[string]([]int{1})))
		assert.False(t, Right[string]([]int{1}).Equals(Right[string]([]int{2})))
	})

	t.Run("cross-side values are never equal", func(t *testing.T) {
		assert.False(t, Left[int, int](1).Equals(Right[int](1)))
		assert.False(t, Right[int](1).Equals(Left[int, int](1)))
	})

	t.Run("equal eithers share a hash", func(t *testing.T) {
		a := Right[string](41)
		b := Right[string](41)
		require.True(t, a.Equals(b))
		assert.Equal(t, a.HashCode(), b.HashCode())

		la := Left[string, int]("e")
		lb := Left[string, int]("e")
		require.True(t, la.Equals(lb))
		assert.Equal(t, la.HashCode(), lb.HashCode())
	})

	t.Run("left and right of the same payload hash apart", func(t *testing.T) {
		assert.NotEqual(t, Left[int, int](7).HashCode(), Right[int](7).HashCode())
	})
}

func TestEitherProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("swap is its own inverse", prop.ForAll(
		func(n int, isRight bool) bool {
			e := Left[string, int]("err")
			if isRight {
				e = Right[string](n)
			}
			return e.Swap().Swap().Equals(e)
		},
		gen.Int(),
		gen.Bool(),
	))

	properties.Property("map identity preserves the either", prop.ForAll(
		func(n int, isRight bool) bool {
			e := Left[string, int]("err")
			if isRight {
				e = Right[string](n)
			}
			return Map(e, func(x int) int { return x }).Equals(e)
		},
		gen.Int(),
		gen.Bool(),
	))

	properties.Property("flatMap left identity", prop.ForAll(
		func(n int) bool {
			f := func(x int) Either[string, int] { return Right[string](x * 2) }
			return FlatMap(Right[string](n), f).Equals(f(n))
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}
