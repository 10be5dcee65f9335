package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseFieldValue(t *testing.T) {
	cases := []struct {
		name      string
		fieldType FieldType
		raw       any
		check     func(t *testing.T, v FieldValue)
		wantErr   error
	}{
		{
			name: "text", fieldType: FieldTypeText, raw: "hello",
			check: func(t *testing.T, v FieldValue) { require.Equal(t, "hello", *v.Text) },
		},
		{
			name: "text rejects number", fieldType: FieldTypeText, raw: 3.0,
			wantErr: ErrValueTypeMismatch,
		},
		{
			name: "number from float", fieldType: FieldTypeNumber, raw: 2.5,
			check: func(t *testing.T, v FieldValue) { require.Equal(t, 2.5, *v.Number) },
		},
		{
			name: "number from int", fieldType: FieldTypeNumber, raw: 3,
			check: func(t *testing.T, v FieldValue) { require.Equal(t, 3.0, *v.Number) },
		},
		{
			name: "number rejects string", fieldType: FieldTypeNumber, raw: "2.5",
			wantErr: ErrValueTypeMismatch,
		},
		{
			name: "bare date", fieldType: FieldTypeDate, raw: "2026-09-01",
			check: func(t *testing.T, v FieldValue) {
				require.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *v.Date)
			},
		},
		{
			name: "rfc3339 date", fieldType: FieldTypeDate, raw: "2026-09-01T14:30:00Z",
			check: func(t *testing.T, v FieldValue) {
				require.Equal(t, time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC), *v.Date)
			},
		},
		{
			name: "date rejects garbage", fieldType: FieldTypeDate, raw: "next tuesday",
			wantErr: ErrValueTypeMismatch,
		},
		{
			name: "boolean", fieldType: FieldTypeBoolean, raw: true,
			check: func(t *testing.T, v FieldValue) { require.True(t, *v.Boolean) },
		},
		{
			name: "boolean rejects string", fieldType: FieldTypeBoolean, raw: "true",
			wantErr: ErrValueTypeMismatch,
		},
		{
			name: "single select", fieldType: FieldTypeSingleSelect, raw: "High",
			check: func(t *testing.T, v FieldValue) { require.Equal(t, "High", *v.Option) },
		},
		{
			name: "single select rejects blank", fieldType: FieldTypeSingleSelect, raw: "  ",
			wantErr: ErrValueTypeMismatch,
		},
		{
			name: "unknown type", fieldType: FieldType("polygon"), raw: "x",
			wantErr: ErrInvalidInput,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := ParseFieldValue(tc.fieldType, tc.raw)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.fieldType, v.Type)
			tc.check(t, v)
		})
	}
}

func TestFieldTypeValid(t *testing.T) {
	for _, ft := range []FieldType{
		FieldTypeText, FieldTypeNumber, FieldTypeDate, FieldTypeBoolean, FieldTypeSingleSelect,
	} {
		require.True(t, ft.Valid())
	}
	require.False(t, FieldType("polygon").Valid())
	require.False(t, FieldType("").Valid())
}
