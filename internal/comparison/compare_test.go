package comparison

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmori/talentmatch/internal/types"
)

func baseExtraction() types.ResumeExtraction {
	return types.ResumeExtraction{
		ClientNames:   []string{"Acme Corp", "Globex"},
		JobTitles:     []string{"Software Developer", "Systems Analyst"},
		RelevantDates: []string{"01/2018 - 06/2020", "07/2020 - Present"},
		Skills:        []string{"java", "sql"},
	}
}

func TestCompare_IdenticalExtractions(t *testing.T) {
	x := baseExtraction()
	result := Compare(x, x)

	assert.False(t, result.HasChanges)
	assert.Equal(t, types.RiskNone, result.OverallRisk)
	assert.Empty(t, result.NewEmployers)
	assert.Empty(t, result.RemovedEmployers)
	assert.Empty(t, result.ChangedDates)
	assert.Empty(t, result.ChangedTitles)
	// Wire contract: arrays, never null.
	assert.NotNil(t, result.NewEmployers)
	assert.NotNil(t, result.RemovedEmployers)
	assert.NotNil(t, result.ChangedDates)
	assert.NotNil(t, result.ChangedTitles)
}

func TestCompare_SwappedEmployerIsHighRisk(t *testing.T) {
	previous := types.ResumeExtraction{ClientNames: []string{"Acme Corp", "Globex"}}
	current := types.ResumeExtraction{ClientNames: []string{"Acme Corp", "Initech"}}

	result := Compare(previous, current)

	assert.True(t, result.HasChanges)
	assert.Equal(t, []string{"Initech"}, result.NewEmployers)
	assert.Equal(t, []string{"Globex"}, result.RemovedEmployers)
	assert.Equal(t, types.RiskHigh, result.OverallRisk)
}

func TestCompare_RemovalOnlyIsMediumRisk(t *testing.T) {
	previous := types.ResumeExtraction{ClientNames: []string{"Acme Corp", "Globex"}}
	current := types.ResumeExtraction{ClientNames: []string{"Acme Corp"}}

	result := Compare(previous, current)

	assert.Equal(t, []string{"Globex"}, result.RemovedEmployers)
	assert.Empty(t, result.NewEmployers)
	assert.Equal(t, types.RiskMedium, result.OverallRisk)
}

func TestCompare_AdditionOnlyIsLowRisk(t *testing.T) {
	previous := types.ResumeExtraction{ClientNames: []string{"Acme Corp"}}
	current := types.ResumeExtraction{ClientNames: []string{"Acme Corp", "Initech"}}

	result := Compare(previous, current)

	assert.Equal(t, []string{"Initech"}, result.NewEmployers)
	assert.Empty(t, result.RemovedEmployers)
	assert.Equal(t, types.RiskLow, result.OverallRisk)
}

func TestCompare_ChangedTitle(t *testing.T) {
	previous := baseExtraction()
	current := baseExtraction()
	current.JobTitles[0] = "Senior Software Developer"

	result := Compare(previous, current)

	require.Len(t, result.ChangedTitles, 1)
	assert.Equal(t, types.EmployerChange{
		Employer: "Acme Corp",
		Old:      "Software Developer",
		New:      "Senior Software Developer",
	}, result.ChangedTitles[0])
	assert.Equal(t, types.RiskLow, result.OverallRisk)
}

func TestCompare_DateChangeEscalation(t *testing.T) {
	previous := types.ResumeExtraction{
		ClientNames:   []string{"Acme Corp", "Globex", "Initech"},
		RelevantDates: []string{"2015 - 2017", "2017 - 2019", "2019 - 2021"},
	}

	oneChanged := previous
	oneChanged.RelevantDates = []string{"2015 - 2018", "2017 - 2019", "2019 - 2021"}
	assert.Equal(t, types.RiskLow, Compare(previous, oneChanged).OverallRisk)

	twoChanged := previous
	twoChanged.RelevantDates = []string{"2015 - 2018", "2016 - 2019", "2019 - 2021"}
	assert.Equal(t, types.RiskMedium, Compare(previous, twoChanged).OverallRisk)

	threeChanged := previous
	threeChanged.RelevantDates = []string{"2015 - 2018", "2016 - 2019", "2018 - 2021"}
	result := Compare(previous, threeChanged)
	assert.Len(t, result.ChangedDates, 3)
	assert.Equal(t, types.RiskHigh, result.OverallRisk)
}

func TestCompare_DayMonthSwapNotAChange(t *testing.T) {
	previous := types.ResumeExtraction{
		ClientNames:   []string{"Acme Corp"},
		RelevantDates: []string{"25/03/2021 - 30/06/2022"},
	}
	current := types.ResumeExtraction{
		ClientNames:   []string{"Acme Corp"},
		RelevantDates: []string{"03/25/2021 - 06/30/2022"},
	}

	result := Compare(previous, current)

	assert.Empty(t, result.ChangedDates)
	assert.False(t, result.HasChanges)
}

func TestCompare_EmployerRespellingNotAChange(t *testing.T) {
	previous := types.ResumeExtraction{ClientNames: []string{"ACME CORP"}}
	current := types.ResumeExtraction{ClientNames: []string{"Acme Corp"}}

	result := Compare(previous, current)

	assert.False(t, result.HasChanges)
	assert.Equal(t, types.RiskNone, result.OverallRisk)
}

func TestCompare_AlignsByEmployerIndexNotPosition(t *testing.T) {
	previous := types.ResumeExtraction{
		ClientNames:   []string{"Acme Corp", "Globex"},
		JobTitles:     []string{"Developer", "Analyst"},
		RelevantDates: []string{"2019 - 2020", "2020 - 2021"},
	}
	current := types.ResumeExtraction{
		ClientNames:   []string{"Globex", "Acme Corp"},
		JobTitles:     []string{"Senior Analyst", "Developer"},
		RelevantDates: []string{"2020 - 2021", "2019 - 2020"},
	}

	result := Compare(previous, current)

	assert.Empty(t, result.NewEmployers)
	assert.Empty(t, result.RemovedEmployers)
	assert.Empty(t, result.ChangedDates)
	require.Len(t, result.ChangedTitles, 1)
	assert.Equal(t, "Globex", result.ChangedTitles[0].Employer)
	assert.Equal(t, "Analyst", result.ChangedTitles[0].Old)
	assert.Equal(t, "Senior Analyst", result.ChangedTitles[0].New)
}

func TestCompare_MissingDatesDoNotFlag(t *testing.T) {
	previous := types.ResumeExtraction{
		ClientNames:   []string{"Acme Corp"},
		RelevantDates: []string{"2019 - 2020"},
	}
	current := types.ResumeExtraction{ClientNames: []string{"Acme Corp"}}

	result := Compare(previous, current)

	assert.Empty(t, result.ChangedDates)
	assert.False(t, result.HasChanges)
}
