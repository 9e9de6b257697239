package core

import "testing"

func TestErrorCodeHTTPStatus(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrBadRequest, 400},
		{ErrNotFound, 404},
		{ErrTimeout, 408},
		{ErrInternal, 500},
		{ErrorCode("SBXD_SOMETHING_NEW"), 500},
	}
	for _, tc := range cases {
		if got := tc.code.HTTPStatus(); got != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.code, tc.want, got)
		}
	}
}

func TestAppErrorString(t *testing.T) {
	err := NewAppError(ErrNotFound, "workspace not found")
	if err.Error() != "SBXD_NOT_FOUND: workspace not found" {
		t.Errorf("unexpected error string %q", err.Error())
	}
}
