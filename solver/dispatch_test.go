package solver

import "testing"

func TestCurrentLevel(t *testing.T) {
	level := CurrentLevel()
	if level.String() == "unknown" {
		t.Errorf("CurrentLevel() = %d, has no name", level)
	}
	if CurrentName() != level.String() {
		t.Errorf("CurrentName() = %q, want %q", CurrentName(), level.String())
	}
	t.Logf("dispatch level: %s", CurrentName())
}

func TestNoParallelEnv(t *testing.T) {
	t.Setenv("SOLVER_NO_PARALLEL", "")
	if NoParallelEnv() {
		t.Error("NoParallelEnv() = true with empty variable")
	}

	t.Setenv("SOLVER_NO_PARALLEL", "1")
	if !NoParallelEnv() {
		t.Error("NoParallelEnv() = false with SOLVER_NO_PARALLEL=1")
	}

	t.Setenv("SOLVER_NO_PARALLEL", "false")
	if NoParallelEnv() {
		t.Error("NoParallelEnv() = true with SOLVER_NO_PARALLEL=false")
	}
}
