package creator

// Stage is a step of project creation. Stages run in declaration order.
type Stage int

const (
	StageStart Stage = iota
	StageNameValidated
	StageTargetResolved
	StageDirectoryCreated
	StageFilesScaffolded
	StageSynced
	StageInstalled
	StageDone
	StageFailed
)

var stageNames = [...]string{
	StageStart:            "start",
	StageNameValidated:    "name-validated",
	StageTargetResolved:   "target-resolved",
	StageDirectoryCreated: "directory-created",
	StageFilesScaffolded:  "files-scaffolded",
	StageSynced:           "synced",
	StageInstalled:        "installed",
	StageDone:             "done",
	StageFailed:           "failed",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// ownsDirectory reports whether a failure after reaching s leaves a
// directory this run created.
func (s Stage) ownsDirectory() bool {
	return s >= StageDirectoryCreated && s < StageDone
}
