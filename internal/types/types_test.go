package types

import "testing"

func TestJobRequirementValidate(t *testing.T) {
	tests := []struct {
		name    string
		job     JobRequirement
		wantErr bool
	}{
		{"Valid", JobRequirement{Title: "Backend Engineer", MinExperience: 2, MaxExperience: 5}, false},
		{"EntryLevel", JobRequirement{Title: "Intern", MinExperience: 0, MaxExperience: 0}, false},
		{"MissingTitle", JobRequirement{MinExperience: 1, MaxExperience: 3}, true},
		{"BlankTitle", JobRequirement{Title: "   ", MinExperience: 1, MaxExperience: 3}, true},
		{"InvertedRange", JobRequirement{Title: "Senior Accountant", MinExperience: 5, MaxExperience: 2}, true},
		{"NegativeMinimum", JobRequirement{Title: "Analyst", MinExperience: -1, MaxExperience: 3}, true},
		{"NegativeMaximum", JobRequirement{Title: "Analyst", MinExperience: 0, MaxExperience: -2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.job.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
