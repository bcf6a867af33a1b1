package types_test

import (
	"errors"
	"testing"

	. "github.com/tobsdb/primdb/internal/types"
	"gotest.tools/assert"
)

func TestCoerce(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		v, err := Coerce("30", FieldTypeInt)
		assert.NilError(t, err)
		assert.Equal(t, v, 30)

		v, err = Coerce(" -7 ", FieldTypeInt)
		assert.NilError(t, err)
		assert.Equal(t, v, -7)
	})

	t.Run("invalid int", func(t *testing.T) {
		_, err := Coerce("abc", FieldTypeInt)
		assert.ErrorContains(t, err, "Cannot convert 'abc' to int")
		assert.Assert(t, errors.Is(err, ErrType))

		_, err = Coerce("1.5", FieldTypeInt)
		assert.Assert(t, errors.Is(err, ErrType))
	})

	t.Run("bool", func(t *testing.T) {
		for _, in := range []string{"Yes", "true", "1", " TRUE "} {
			v, err := Coerce(in, FieldTypeBool)
			assert.NilError(t, err, in)
			assert.Equal(t, v, true, in)
		}
		for _, in := range []string{"no", "False", "0"} {
			v, err := Coerce(in, FieldTypeBool)
			assert.NilError(t, err, in)
			assert.Equal(t, v, false, in)
		}
	})

	t.Run("invalid bool", func(t *testing.T) {
		_, err := Coerce("maybe", FieldTypeBool)
		assert.Assert(t, errors.Is(err, ErrType))
	})

	t.Run("str", func(t *testing.T) {
		v, err := Coerce("'hi'", FieldTypeString)
		assert.NilError(t, err)
		assert.Equal(t, v, "hi")

		v, _ = Coerce(`"hi"`, FieldTypeString)
		assert.Equal(t, v, "hi")

		v, _ = Coerce(`"'hi'"`, FieldTypeString)
		assert.Equal(t, v, "'hi'")

		v, _ = Coerce(`"hi'`, FieldTypeString)
		assert.Equal(t, v, `"hi'`)

		v, _ = Coerce("plain", FieldTypeString)
		assert.Equal(t, v, "plain")
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := Coerce("1.5", FieldType("float"))
		assert.Assert(t, errors.Is(err, ErrInvalidType))
		assert.ErrorContains(t, err, "{int, str, bool}")
	})
}

func TestStringify(t *testing.T) {
	assert.Equal(t, Stringify(1), "1")
	assert.Equal(t, Stringify("1"), "1")
	assert.Equal(t, Stringify(true), "true")
	assert.Equal(t, Stringify(2.5), "2.5")
	assert.Equal(t, Stringify(nil), "")
}

func TestFieldType(t *testing.T) {
	assert.Assert(t, FieldTypeInt.IsValid())
	assert.Assert(t, !FieldType("float").IsValid())
	assert.Assert(t, !FieldType("Int").IsValid())
	assert.Assert(t, CheckValue(1, FieldTypeInt))
	assert.Assert(t, !CheckValue("1", FieldTypeInt))
}

func TestErrorKinds(t *testing.T) {
	err := NewError(ErrorKindNotFound, "Table %q does not exist", "a")
	assert.Equal(t, err.Error(), `Table "a" does not exist`)
	assert.Equal(t, err.Kind(), ErrorKindNotFound)
	assert.Assert(t, errors.Is(err, ErrNotFound))
	assert.Assert(t, !errors.Is(err, ErrAlreadyExists))
}
