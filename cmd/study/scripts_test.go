package main

import (
	"testing"

	"github.com/amonks/studyflow/internal/testsupport"
	"github.com/rogpeppe/go-internal/testscript"
)

func TestPlanScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/plan",
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
	})
}
