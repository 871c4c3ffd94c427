package classify

import (
	"context"
	"errors"
	"testing"

	"hirescreen/internal/taxonomy"
	"hirescreen/internal/types"
)

func TestClassifyByKeywords(t *testing.T) {
	tests := []struct {
		name string
		job  types.JobRequirement
		want string
	}{
		{
			name: "network role",
			job: types.JobRequirement{
				Title:       "Network Engineer",
				Description: "Configure cisco routers and switches, manage firewall and vpn setups",
			},
			want: taxonomy.DomainNetworkInfra,
		},
		{
			name: "full stack role",
			job: types.JobRequirement{
				Title:       "Full Stack Developer",
				Description: "Build react frontend and node backend services",
			},
			want: taxonomy.DomainFullStack,
		},
		{
			name: "finance role",
			job: types.JobRequirement{
				Title:       "Accountant",
				Description: "Handle bookkeeping, gst filings and payroll using tally",
			},
			want: taxonomy.DomainFinance,
		},
		{
			name: "below threshold falls back",
			job: types.JobRequirement{
				Title:       "Operations Associate",
				Description: "General coordination work",
			},
			want: taxonomy.DefaultDomain,
		},
		{
			name: "explicit override wins",
			job: types.JobRequirement{
				Title:          "Accountant",
				Description:    "bookkeeping and taxation",
				DomainCategory: taxonomy.DomainFullStack,
			},
			want: taxonomy.DomainFullStack,
		},
		{
			name: "unknown override ignored",
			job: types.JobRequirement{
				Title:          "Accountant",
				Description:    "bookkeeping and taxation with tally",
				DomainCategory: "no-such-domain",
			},
			want: taxonomy.DomainFinance,
		},
	}

	classifier := NewClassifier(nil, nil, 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(context.Background(), &tt.job)
			if got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifyNilJob(t *testing.T) {
	classifier := NewClassifier(nil, nil, 0)
	if got := classifier.Classify(context.Background(), nil); got != taxonomy.DefaultDomain {
		t.Errorf("Classify(nil) = %q, want default domain", got)
	}
}

type fakeSemantic struct {
	available  bool
	category   string
	confidence float64
	err        error
}

func (f *fakeSemantic) ClassifyDomain(_ context.Context, _ *types.JobRequirement) (string, float64, error) {
	return f.category, f.confidence, f.err
}

func (f *fakeSemantic) IsAvailable() bool { return f.available }

func TestClassifySemanticOverride(t *testing.T) {
	job := &types.JobRequirement{
		Title:       "Network Engineer",
		Description: "cisco routers, switches, firewall management",
	}

	tests := []struct {
		name     string
		semantic *fakeSemantic
		want     string
	}{
		{
			name:     "confident override applies",
			semantic: &fakeSemantic{available: true, category: taxonomy.DomainGeneralSoftware, confidence: 0.9},
			want:     taxonomy.DomainGeneralSoftware,
		},
		{
			name:     "low confidence keeps keyword result",
			semantic: &fakeSemantic{available: true, category: taxonomy.DomainGeneralSoftware, confidence: 0.4},
			want:     taxonomy.DomainNetworkInfra,
		},
		{
			name:     "unavailable keeps keyword result",
			semantic: &fakeSemantic{available: false, category: taxonomy.DomainGeneralSoftware, confidence: 0.9},
			want:     taxonomy.DomainNetworkInfra,
		},
		{
			name:     "error keeps keyword result",
			semantic: &fakeSemantic{available: true, category: taxonomy.DomainGeneralSoftware, confidence: 0.9, err: errors.New("model unavailable")},
			want:     taxonomy.DomainNetworkInfra,
		},
		{
			name:     "unknown category keeps keyword result",
			semantic: &fakeSemantic{available: true, category: "made-up-domain", confidence: 0.9},
			want:     taxonomy.DomainNetworkInfra,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := NewClassifier(nil, tt.semantic, 0.75)
			got := classifier.Classify(context.Background(), job)
			if got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}
