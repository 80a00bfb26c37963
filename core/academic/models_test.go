package academic

import "testing"

func TestNivelFromSemester(t *testing.T) {
	tests := []struct {
		semester int
		want     int
	}{
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{7, 4},
		{10, 5},
	}
	for _, tt := range tests {
		if got := NivelFromSemester(tt.semester); got != tt.want {
			t.Errorf("NivelFromSemester(%d) = %d, want %d", tt.semester, got, tt.want)
		}
	}
}

func TestNivelLabel(t *testing.T) {
	if got := NivelLabel(1); got != "Primer Año" {
		t.Errorf("NivelLabel(1) = %q", got)
	}
	if got := NivelLabel(9); got != "Año 9" {
		t.Errorf("NivelLabel(9) = %q", got)
	}
}

func TestWithdrawalReasonLabel(t *testing.T) {
	if got := ReasonEconomic.Label(); got != "Problemas económicos" {
		t.Errorf("Label() = %q", got)
	}
	// unknown reasons fall back to the raw value
	if got := WithdrawalReason("whatever").Label(); got != "whatever" {
		t.Errorf("Label() = %q", got)
	}
}

func TestFullName(t *testing.T) {
	s := Student{FirstName: "María", LastName: "Pérez"}
	if got := s.FullName(); got != "María Pérez" {
		t.Errorf("FullName() = %q", got)
	}
}
