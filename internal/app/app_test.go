package app_test

import (
	"context"
	"testing"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/adapters/telemetry"
	"github.com/MOMA-AUH/gwf-failed-targets/internal/app"
	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/domain"
	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/ports/mocks"
	"github.com/MOMA-AUH/gwf-failed-targets/internal/engine/triage"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const sacctOutput = "JobID|NodeList|NNodes|NCPUS|ReqMem|MaxRSS|Timelimit|Elapsed|State|ExitCode\n" +
	"1001|node042|1|4|4Gn|3G|01:00:00|01:00:12|TIMEOUT|0:0\n"

type fixture struct {
	loader    *mocks.MockWorkflowLoader
	state     *mocks.MockStateStore
	source    *mocks.MockAccountingSource
	submitter *mocks.MockSubmitter
	reporter  *mocks.MockReporter
	app       *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	f := &fixture{
		loader:    mocks.NewMockWorkflowLoader(ctrl),
		state:     mocks.NewMockStateStore(ctrl),
		source:    mocks.NewMockAccountingSource(ctrl),
		submitter: mocks.NewMockSubmitter(ctrl),
		reporter:  mocks.NewMockReporter(ctrl),
	}

	engine := triage.NewEngine(triage.NewClassifier(), telemetry.NewNoopTracer(), mockLogger)
	f.app = app.New(
		f.loader, f.state, f.source, engine, f.submitter, mockLogger, telemetry.NewNoopTracer(),
	).WithReporter(f.reporter)
	return f
}

func testGraph(t *testing.T) *domain.Graph {
	t.Helper()
	g := domain.NewGraph()
	walltime, err := domain.ParseWalltime("01:00:00")
	require.NoError(t, err)
	require.NoError(t, g.AddTarget(&domain.Target{
		Name:      domain.NewInternedString("align_sample1"),
		Resources: domain.Resources{Walltime: walltime},
	}))
	require.NoError(t, g.AddTarget(&domain.Target{
		Name:         domain.NewInternedString("sort_sample1"),
		Dependencies: domain.NewInternedStrings([]string{"align_sample1"}),
	}))
	return g
}

func TestApp_Run_ReportOnly(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("proj").Return(testGraph(t), nil)
	f.state.EXPECT().FailedTargets("proj").Return([]string{"align_sample1"}, nil)
	f.state.EXPECT().TrackedJobs("proj").Return(map[string]string{"align_sample1": "1001"}, nil)
	f.source.EXPECT().Query(gomock.Any(), []string{"1001"}).Return(sacctOutput, nil)

	var emitted []domain.Finding
	f.reporter.EXPECT().Emit(gomock.Any()).DoAndReturn(func(findings []domain.Finding) error {
		emitted = findings
		return nil
	})

	require.NoError(t, f.app.Run(context.Background(), app.RunOptions{Dir: "proj"}))
	require.Len(t, emitted, 1)
	require.Equal(t, domain.FailureTimeout, emitted[0].Kind)
	require.Nil(t, emitted[0].Decision)
}

func TestApp_Run_Restart(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("proj").Return(testGraph(t), nil)
	f.state.EXPECT().FailedTargets("proj").Return([]string{"align_sample1"}, nil)
	f.state.EXPECT().TrackedJobs("proj").Return(map[string]string{"align_sample1": "1001"}, nil)
	f.source.EXPECT().Query(gomock.Any(), []string{"1001"}).Return(sacctOutput, nil)
	f.reporter.EXPECT().Emit(gomock.Any()).Return(nil)

	var submitted []domain.RestartDecision
	f.submitter.EXPECT().Resubmit(gomock.Any(), "proj", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, decisions []domain.RestartDecision) error {
			submitted = decisions
			return nil
		},
	)

	require.NoError(t, f.app.Run(context.Background(), app.RunOptions{
		Dir:        "proj",
		Restart:    true,
		Multiplier: 1.5,
	}))

	require.Len(t, submitted, 1)
	require.True(t, submitted[0].Eligible)
	require.NotNil(t, submitted[0].Resources)
	require.Equal(t, "01:30:00", submitted[0].Resources.Walltime.String())
	require.Len(t, submitted[0].Dependents, 1)
	require.Equal(t, "sort_sample1", submitted[0].Dependents[0].String())
}

func TestApp_Run_NoFailedTargets(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(".").Return(testGraph(t), nil)
	f.state.EXPECT().FailedTargets(".").Return(nil, nil)

	// No query, no report, no resubmission.
	require.NoError(t, f.app.Run(context.Background(), app.RunOptions{}))
}

func TestApp_Run_AccountingFailureIsFatal(t *testing.T) {
	f := newFixture(t)

	queryErr := zerr.Wrap(domain.ErrAccountingQueryFailed, "sacct exited 1")
	f.loader.EXPECT().Load(".").Return(testGraph(t), nil)
	f.state.EXPECT().FailedTargets(".").Return([]string{"align_sample1"}, nil)
	f.state.EXPECT().TrackedJobs(".").Return(map[string]string{"align_sample1": "1001"}, nil)
	f.source.EXPECT().Query(gomock.Any(), gomock.Any()).Return("", queryErr)

	err := f.app.Run(context.Background(), app.RunOptions{})
	require.ErrorIs(t, err, domain.ErrAccountingQueryFailed)
}

func TestApp_Run_InvalidMultiplierBeforeAnyWork(t *testing.T) {
	f := newFixture(t)

	err := f.app.Run(context.Background(), app.RunOptions{Restart: true, Multiplier: -1})
	require.ErrorIs(t, err, domain.ErrInvalidMultiplier)
}

func TestApp_Run_WorkflowLoadFailure(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(".").Return(nil, domain.ErrWorkflowReadFailed)

	err := f.app.Run(context.Background(), app.RunOptions{})
	require.ErrorIs(t, err, domain.ErrWorkflowReadFailed)
}

func TestApp_Run_DeduplicatesJobIDs(t *testing.T) {
	f := newFixture(t)

	g := testGraph(t)
	require.NoError(t, g.AddTarget(&domain.Target{Name: domain.NewInternedString("qc_check")}))

	f.loader.EXPECT().Load(".").Return(g, nil)
	f.state.EXPECT().FailedTargets(".").Return([]string{"align_sample1", "qc_check"}, nil)
	f.state.EXPECT().TrackedJobs(".").Return(map[string]string{
		"align_sample1": "1001",
		"qc_check":      "1001",
	}, nil)
	f.source.EXPECT().Query(gomock.Any(), []string{"1001"}).Return(sacctOutput, nil)
	f.reporter.EXPECT().Emit(gomock.Any()).Return(nil)

	require.NoError(t, f.app.Run(context.Background(), app.RunOptions{}))
}
