package eventos

import "testing"

func TestIdValido(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{id: "b4f2b1f0-8c2a-4f6e-9a3d-1c2e3f4a5b6c", want: true},
		{id: "B4F2B1F0-8C2A-4F6E-9A3D-1C2E3F4A5B6C", want: true},
		{id: "nao-e-um-uuid", want: false},
		{id: "123", want: false},
		{id: "", want: false},
		{id: "b4f2b1f0-8c2a-4f6e-9a3d-1c2e3f4a5b6c; DROP TABLE", want: false},
	}

	for _, tc := range cases {
		if got := idValido(tc.id); got != tc.want {
			t.Errorf("idValido(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}
