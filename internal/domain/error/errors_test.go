package error

import (
	"errors"
	"fmt"
	"strconv"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInvalidBatch.Error() != "invalid request: expected an array" {
		t.Errorf("ErrInvalidBatch has unexpected message: %s", ErrInvalidBatch.Error())
	}
	if !errors.Is(ErrMissingPhone, ErrInvalidRequest) {
		t.Errorf("ErrMissingPhone should wrap ErrInvalidRequest")
	}
	if errors.Is(ErrDatabaseConnection, ErrInvalidRequest) {
		t.Errorf("ErrDatabaseConnection must not be a client error")
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidBatch", ErrInvalidBatch, 4001},
		{"MissingMatchKey", ErrMissingMatchKey, 4002},
		{"InvalidField", ErrInvalidField, 4003},
		{"MissingPhone", ErrMissingPhone, 4004},
		{"MissingLogFields", ErrMissingLogFields, 4005},
		{"InvalidRequest", ErrInvalidRequest, 4000},
		{"DuplicateUser", ErrDuplicateUser, 4090},
		{"NotFound", ErrNotFound, 4040},
		{"DatabaseConnection", ErrDatabaseConnection, 5030},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrMissingMatchKey), 4002},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestIsClientError(t *testing.T) {
	if !IsClientError(ErrInvalidBatch) {
		t.Error("ErrInvalidBatch should be a client error")
	}
	if !IsClientError(NewFieldError("user", "balance", "abc", errors.New("bad"))) {
		t.Error("FieldError should be a client error")
	}
	if IsClientError(ErrInternalServer) {
		t.Error("ErrInternalServer should not be a client error")
	}
	if IsClientError(nil) {
		t.Error("nil should not be a client error")
	}
}

func TestFieldError(t *testing.T) {
	_, parseErr := strconv.ParseFloat("abc", 64)
	fieldErr := NewFieldError("user", "balance", "abc", parseErr)

	expected := `user.balance: cannot use abc: ` + parseErr.Error()
	if fieldErr.Error() != expected {
		t.Errorf("FieldError.Error() = %s, want %s", fieldErr.Error(), expected)
	}
	if !errors.Is(fieldErr, ErrInvalidField) {
		t.Error("FieldError should match ErrInvalidField")
	}
	if ErrorCode(fieldErr) != CodeInvalidField {
		t.Errorf("ErrorCode(FieldError) = %d, want %d", ErrorCode(fieldErr), CodeInvalidField)
	}

	var fe *FieldError
	if !errors.As(fmt.Errorf("decode: %w", fieldErr), &fe) {
		t.Fatal("errors.As should find FieldError through wrapping")
	}
	fields := fe.LogFields()
	if fields["field"] != "balance" || fields["entity"] != "user" {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestBatchError(t *testing.T) {
	batchErr := NewBatchError("loan", 2, "loan-7", ErrDatabaseConnection)

	expected := `loan batch entry 2 (key "loan-7"): database connection error`
	if batchErr.Error() != expected {
		t.Errorf("BatchError.Error() = %s, want %s", batchErr.Error(), expected)
	}
	if !errors.Is(batchErr, ErrDatabaseConnection) {
		t.Error("BatchError should unwrap to the underlying error")
	}

	var be *BatchError
	if !errors.As(batchErr, &be) {
		t.Fatal("errors.As should find BatchError")
	}
	fields := be.LogFields()
	if fields["index"] != 2 {
		t.Errorf("LogFields index = %v, want 2", fields["index"])
	}
	if fields["error_code"] != CodeDatabaseConnection {
		t.Errorf("LogFields error_code = %v, want %d", fields["error_code"], CodeDatabaseConnection)
	}
}
