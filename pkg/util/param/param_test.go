package param

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeRead(t *testing.T) {
	tests := []struct {
		name   string
		target string
		param  string
		want   string
	}{
		{name: "valid path", target: "/api/decision?path=/jobs/42", param: "path", want: "/jobs/42"},
		{name: "path with scheme rejected", target: "/api/decision?path=http://evil", param: "path", want: ""},
		{name: "valid roles list", target: "/?roles=admin,office", param: "roles", want: "admin,office"},
		{name: "roles with spaces rejected", target: "/?roles=admin,%20office", param: "roles", want: ""},
		{name: "bool true", target: "/?showExperimental=true", param: "showExperimental", want: "true"},
		{name: "bool junk rejected", target: "/?showExperimental=yes", param: "showExperimental", want: ""},
		{name: "absent param", target: "/", param: "path", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)
			assert.Equal(t, tt.want, SafeRead(req, tt.param))
		})
	}
}

func TestCleanse(t *testing.T) {
	assert.Equal(t, "/jobs/42", Cleanse("/jobs/42"))
	assert.Equal(t, "/jobs/42scriptx", Cleanse("/jobs/42<script>x"))
}
