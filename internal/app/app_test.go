package app_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crate/internal/app"
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// fixture bundles the mocked collaborators behind one App.
type fixture struct {
	app       *app.App
	inspector *mocks.MockInspector
	pms       *mocks.MockPackageManagers
	resolver  *mocks.MockConfigResolver
	runner    *mocks.MockBuildRunner
	validator *mocks.MockOutputValidator
	archiver  *mocks.MockArchiver
	logger    *mocks.MockLogger
	sink      *mocks.MockProgressSink
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		inspector: mocks.NewMockInspector(ctrl),
		pms:       mocks.NewMockPackageManagers(ctrl),
		resolver:  mocks.NewMockConfigResolver(ctrl),
		runner:    mocks.NewMockBuildRunner(ctrl),
		validator: mocks.NewMockOutputValidator(ctrl),
		archiver:  mocks.NewMockArchiver(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		sink:      mocks.NewMockProgressSink(ctrl),
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	f.app = app.New(f.inspector, f.pms, f.resolver, f.runner, f.validator, f.archiver, f.logger, f.sink)
	return f
}

func nextInfo(root string) domain.ProjectInfo {
	return domain.ProjectInfo{
		Root:     root,
		Type:     domain.ProjectTypeNext,
		Manifest: &domain.Manifest{Name: "web"},
	}
}

func buildConfig() domain.BuildConfig {
	return domain.BuildConfig{
		BuildCommand:      "npm run build",
		CompressionFormat: domain.FormatZip,
		Exclude:           []string{"node_modules"},
	}
}

func (f *fixture) expectDetect(root string, cfg domain.BuildConfig, msgs []string) {
	info := nextInfo(root)
	f.inspector.EXPECT().Inspect(root).Return(info)
	f.pms.EXPECT().Detect(root).Return(domain.PackageManagerNpm)
	f.resolver.EXPECT().Resolve(info, domain.PackageManagerNpm).Return(cfg, nil)
	f.resolver.EXPECT().Validate(root, cfg).Return(msgs)
}

func successfulBuild() domain.BuildResult {
	code := 0
	return domain.BuildResult{Success: true, ExitCode: &code, CommandUsed: "npm run build", CombinedOutput: "done"}
}

func failedBuild() domain.BuildResult {
	code := 1
	return domain.BuildResult{Success: false, ExitCode: &code, CommandUsed: "npm run build", CombinedOutput: "boom"}
}

func TestRun_HappyPath(t *testing.T) {
	root := t.TempDir()
	f := newFixture(t)
	cfg := buildConfig()

	f.expectDetect(root, cfg, nil)
	f.runner.EXPECT().Execute(gomock.Any(), root, cfg, f.sink).Return(successfulBuild(), nil)
	f.validator.EXPECT().Validate(root, domain.ProjectTypeNext, cfg, "done").
		Return(domain.ValidationReport{Success: true})
	f.archiver.EXPECT().Build(gomock.Any(), gomock.Any(), f.sink).
		DoAndReturn(func(_ context.Context, plan domain.ArchivePlan, _ any) (domain.Artifact, error) {
			assert.Equal(t, root, plan.Root)
			assert.Equal(t, domain.FormatZip, plan.Format)
			assert.Equal(t, filepath.Join(root, "web.zip"), plan.OutputPath)
			assert.Equal(t, []string{"node_modules"}, plan.Excludes)
			return domain.Artifact{Path: plan.OutputPath, Entries: 3, Size: 1024}, nil
		})

	report, err := f.app.Run(context.Background(), root, app.RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, domain.StateDone, report.State)
	require.NotNil(t, report.Artifact)
	assert.Equal(t, filepath.Join(root, "web.zip"), report.Artifact.Path)
	require.NotNil(t, report.Build)
	assert.True(t, report.Build.Success)
}

func TestRun_ExplicitOutputPathWins(t *testing.T) {
	root := t.TempDir()
	f := newFixture(t)
	cfg := buildConfig()

	f.expectDetect(root, cfg, nil)
	f.runner.EXPECT().Execute(gomock.Any(), root, cfg, f.sink).Return(successfulBuild(), nil)
	f.validator.EXPECT().Validate(root, domain.ProjectTypeNext, cfg, "done").
		Return(domain.ValidationReport{Success: true})
	f.archiver.EXPECT().Build(gomock.Any(), gomock.Any(), f.sink).
		DoAndReturn(func(_ context.Context, plan domain.ArchivePlan, _ any) (domain.Artifact, error) {
			assert.Equal(t, "/tmp/custom.zip", plan.OutputPath)
			return domain.Artifact{Path: plan.OutputPath}, nil
		})

	_, err := f.app.Run(context.Background(), root, app.RunOptions{OutputPath: "/tmp/custom.zip"})
	require.NoError(t, err)
}

func TestRun_ConfigProblemsHaltBeforeBuilding(t *testing.T) {
	root := t.TempDir()
	f := newFixture(t)
	cfg := buildConfig()

	f.expectDetect(root, cfg, []string{`declared output directory "dist" does not exist`})

	report, err := f.app.Run(context.Background(), root, app.RunOptions{})
	assert.ErrorIs(t, err, domain.ErrConfigInvalid)
	assert.Equal(t, domain.StateFailed, report.State)
	assert.Len(t, report.Messages, 1)
}

func TestRun_NoBuildCommandAborts(t *testing.T) {
	root := t.TempDir()
	f := newFixture(t)
	cfg := buildConfig()
	cfg.BuildCommand = ""

	f.expectDetect(root, cfg, []string{domain.MsgNoBuildCommand})

	report, err := f.app.Run(context.Background(), root, app.RunOptions{})
	assert.ErrorIs(t, err, domain.ErrNoBuildCommand)
	assert.Equal(t, domain.StateFailed, report.State)
}

func TestRun_NoBuildCommandContinuesToArchive(t *testing.T) {
	root := t.TempDir()
	f := newFixture(t)
	cfg := buildConfig()
	cfg.BuildCommand = ""

	f.expectDetect(root, cfg, []string{domain.MsgNoBuildCommand})
	f.archiver.EXPECT().Build(gomock.Any(), gomock.Any(), f.sink).
		Return(domain.Artifact{Path: "out.zip"}, nil)

	var asked []domain.Condition
	decide := func(cond domain.Condition, _ string) bool {
		asked = append(asked, cond)
		return true
	}

	report, err := f.app.Run(context.Background(), root, app.RunOptions{Decide: decide})
	require.NoError(t, err)

	assert.Equal(t, []domain.Condition{domain.ConditionNoBuildCommand}, asked)
	assert.Equal(t, domain.StateDone, report.State)
	assert.Nil(t, report.Build)
}

func TestRun_SkipBuildNeverInvokesRunner(t *testing.T) {
	root := t.TempDir()
	f := newFixture(t)
	cfg := buildConfig()

	f.expectDetect(root, cfg, nil)
	f.archiver.EXPECT().Build(gomock.Any(), gomock.Any(), f.sink).
		Return(domain.Artifact{Path: "out.zip"}, nil)

	report, err := f.app.Run(context.Background(), root, app.RunOptions{SkipBuild: true})
	require.NoError(t, err)
	assert.Equal(t, domain.StateDone, report.State)
	assert.Nil(t, report.Build)
}

func TestRun_BuildFailureAborts(t *testing.T) {
	root := t.TempDir()
	f := newFixture(t)
	cfg := buildConfig()

	f.expectDetect(root, cfg, nil)
	f.runner.EXPECT().Execute(gomock.Any(), root, cfg, f.sink).Return(failedBuild(), nil)
	f.validator.EXPECT().Validate(root, domain.ProjectTypeNext, cfg, "boom").
		Return(domain.ValidationReport{Success: false, Messages: []string{"error: boom"}})

	report, err := f.app.Run(context.Background(), root, app.RunOptions{})
	assert.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.Equal(t, domain.StateFailed, report.State)
	require.NotNil(t, report.Build)
	assert.False(t, report.Build.Success)
	assert.Contains(t, report.Messages, "error: boom")
}

func TestRun_BuildFailureContinuesWhenAccepted(t *testing.T) {
	root := t.TempDir()
	f := newFixture(t)
	cfg := buildConfig()

	f.expectDetect(root, cfg, nil)
	f.runner.EXPECT().Execute(gomock.Any(), root, cfg, f.sink).Return(failedBuild(), nil)
	f.validator.EXPECT().Validate(root, domain.ProjectTypeNext, cfg, "boom").
		Return(domain.ValidationReport{Success: false, Messages: []string{"error: boom"}})
	f.archiver.EXPECT().Build(gomock.Any(), gomock.Any(), f.sink).
		Return(domain.Artifact{Path: "out.zip"}, nil)

	report, err := f.app.Run(context.Background(), root, app.RunOptions{Decide: app.ContinueAll})
	require.NoError(t, err)
	assert.Equal(t, domain.StateDone, report.State)
}

func TestRun_HookFailureCarriesPhase(t *testing.T) {
	root := t.TempDir()
	f := newFixture(t)
	cfg := buildConfig()

	hookErr := &domain.PhaseError{
		Phase:   domain.PhasePreBuild,
		Command: "npm ci",
		Err:     errors.New("exit status 1"),
	}
	f.expectDetect(root, cfg, nil)
	f.runner.EXPECT().Execute(gomock.Any(), root, cfg, f.sink).
		Return(domain.BuildResult{CommandUsed: "npm run build"}, hookErr)

	report, err := f.app.Run(context.Background(), root, app.RunOptions{})
	assert.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.Equal(t, domain.StateFailed, report.State)
}

func TestRun_ArchiveFailure(t *testing.T) {
	root := t.TempDir()
	f := newFixture(t)
	cfg := buildConfig()

	f.expectDetect(root, cfg, nil)
	f.runner.EXPECT().Execute(gomock.Any(), root, cfg, f.sink).Return(successfulBuild(), nil)
	f.validator.EXPECT().Validate(root, domain.ProjectTypeNext, cfg, "done").
		Return(domain.ValidationReport{Success: true})
	f.archiver.EXPECT().Build(gomock.Any(), gomock.Any(), f.sink).
		Return(domain.Artifact{}, domain.ErrArchive)

	report, err := f.app.Run(context.Background(), root, app.RunOptions{})
	assert.ErrorIs(t, err, domain.ErrArchive)
	assert.Equal(t, domain.StateFailed, report.State)
	assert.Nil(t, report.Artifact)
}

func TestRun_UploadsWhenRequested(t *testing.T) {
	root := t.TempDir()
	f := newFixture(t)
	cfg := buildConfig()

	ctrl := gomock.NewController(t)
	uploader := mocks.NewMockUploader(ctrl)
	f.app.WithUploader(uploader)

	f.expectDetect(root, cfg, nil)
	f.runner.EXPECT().Execute(gomock.Any(), root, cfg, f.sink).Return(successfulBuild(), nil)
	f.validator.EXPECT().Validate(root, domain.ProjectTypeNext, cfg, "done").
		Return(domain.ValidationReport{Success: true})
	f.archiver.EXPECT().Build(gomock.Any(), gomock.Any(), f.sink).
		Return(domain.Artifact{Path: "web.zip"}, nil)
	uploader.EXPECT().Upload(gomock.Any(), "web.zip").Return(nil)

	report, err := f.app.Run(context.Background(), root, app.RunOptions{Upload: true})
	require.NoError(t, err)
	assert.Equal(t, domain.StateDone, report.State)
}

func TestBuild_StopsBeforeArchiving(t *testing.T) {
	root := t.TempDir()
	f := newFixture(t)
	cfg := buildConfig()

	f.expectDetect(root, cfg, nil)
	f.runner.EXPECT().Execute(gomock.Any(), root, cfg, f.sink).Return(successfulBuild(), nil)
	f.validator.EXPECT().Validate(root, domain.ProjectTypeNext, cfg, "done").
		Return(domain.ValidationReport{Success: true})

	report, err := f.app.Build(context.Background(), root, app.RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, domain.StateValidating, report.State)
	assert.Nil(t, report.Artifact)
}

func TestDetect(t *testing.T) {
	root := t.TempDir()
	f := newFixture(t)
	cfg := buildConfig()

	f.expectDetect(root, cfg, []string{"some warning"})

	report, err := f.app.Detect(root)
	require.NoError(t, err)
	assert.Equal(t, domain.StateConfigResolved, report.State)
	assert.Equal(t, domain.ProjectTypeNext, report.Project.Type)
	assert.Equal(t, domain.PackageManagerNpm, report.PackageManager)
	assert.Equal(t, []string{"some warning"}, report.Messages)
}

func TestRun_MissingDeclaredOutputDirAfterBuild(t *testing.T) {
	root := t.TempDir()
	f := newFixture(t)
	cfg := buildConfig()
	cfg.OutputDir = "dist"

	f.expectDetect(root, cfg, nil)
	f.runner.EXPECT().Execute(gomock.Any(), root, cfg, f.sink).Return(successfulBuild(), nil)
	f.validator.EXPECT().Validate(root, domain.ProjectTypeNext, cfg, "done").
		Return(domain.ValidationReport{Success: true})

	// Declining the missing-output-dir decision aborts before archiving.
	report, err := f.app.Run(context.Background(), root, app.RunOptions{
		Decide: func(cond domain.Condition, _ string) bool {
			return cond != domain.ConditionOutputDirMissing
		},
	})
	assert.ErrorIs(t, err, domain.ErrAborted)
	assert.Equal(t, domain.StateFailed, report.State)
}
