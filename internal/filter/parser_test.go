package filter

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *Filter
		wantErr bool
	}{
		{
			name:  "empty expression",
			input: "",
			want:  NewFilter(),
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  NewFilter(),
		},
		{
			name:  "single milestone",
			input: "milestone:50",
			want: &Filter{
				Milestones: []int{50},
				AgeGroups:  []string{},
				Names:      []string{},
			},
		},
		{
			name:  "milestone list",
			input: "milestone:50,100,250",
			want: &Filter{
				Milestones: []int{50, 100, 250},
				AgeGroups:  []string{},
				Names:      []string{},
			},
		},
		{
			name:  "milestones alias",
			input: "milestones:25",
			want: &Filter{
				Milestones: []int{25},
				AgeGroups:  []string{},
				Names:      []string{},
			},
		},
		{
			name:  "full expression",
			input: "milestone:50,100 agegroup:J name:nowak juniors minruns:40",
			want: &Filter{
				Milestones:  []int{50, 100},
				AgeGroups:   []string{"J"},
				Names:       []string{"nowak"},
				JuniorsOnly: true,
				MinRuns:     40,
			},
		},
		{
			name:  "juniors is case-insensitive",
			input: "JUNIORS",
			want: &Filter{
				Milestones:  []int{},
				AgeGroups:   []string{},
				Names:       []string{},
				JuniorsOnly: true,
			},
		},
		{
			name:  "agegroups alias with list",
			input: "agegroups:J,VM50",
			want: &Filter{
				Milestones: []int{},
				AgeGroups:  []string{"J", "VM50"},
				Names:      []string{},
			},
		},
		{
			name:  "names alias",
			input: "names:nowak,kowalski",
			want: &Filter{
				Milestones: []int{},
				AgeGroups:  []string{},
				Names:      []string{"nowak", "kowalski"},
			},
		},
		{
			name:  "repeated keys accumulate",
			input: "milestone:50 milestone:100",
			want: &Filter{
				Milestones: []int{50, 100},
				AgeGroups:  []string{},
				Names:      []string{},
			},
		},
		{
			name:    "unknown key",
			input:   "pace:25",
			wantErr: true,
		},
		{
			name:    "milestone not a number",
			input:   "milestone:fifty",
			wantErr: true,
		},
		{
			name:    "milestone zero",
			input:   "milestone:0",
			wantErr: true,
		},
		{
			name:    "milestone list of only commas",
			input:   "milestone:,,",
			wantErr: true,
		},
		{
			name:    "missing value",
			input:   "milestone:",
			wantErr: true,
		},
		{
			name:    "bare word other than juniors",
			input:   "seniors",
			wantErr: true,
		},
		{
			name:    "negative min runs",
			input:   "minruns:-5",
			wantErr: true,
		},
		{
			name:    "min runs not a number",
			input:   "minruns:many",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
