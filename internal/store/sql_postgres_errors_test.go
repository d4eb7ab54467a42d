package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
)

func TestClassifyConstraintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ConstraintClass
	}{
		{name: "nil error", err: nil, want: NoConstraint},
		{name: "plain error", err: errors.New("boom"), want: NoConstraint},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: UniqueConstraint},
		{name: "foreign key violation", err: pgError(pgerrcode.ForeignKeyViolation), want: ReferenceConstraint},
		{name: "not null violation", err: pgError(pgerrcode.NotNullViolation), want: ReferenceConstraint},
		{name: "other pg error", err: pgError(pgerrcode.SerializationFailure), want: NoConstraint},
		{name: "wrapped pg error", err: fmt.Errorf("insert failed: %w", pgError(pgerrcode.UniqueViolation)), want: UniqueConstraint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyConstraintError(tt.err); got != tt.want {
				t.Errorf("ClassifyConstraintError() = %v, want %v", got, tt.want)
			}
		})
	}
}
