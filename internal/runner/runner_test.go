package runner

import (
	"context"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"

	sharederrors "github.com/abhcs/bap-taint/pkg/shared/errors"
)

func TestLaunchSignalsCompletionOnce(t *testing.T) {
	r := New("true", hclog.NewNullLogger())

	finished := make(chan error, 2)
	err := r.Launch(context.Background(), nil, func(err error) {
		finished <- err
	})
	assert.NoError(t, err)

	select {
	case err := <-finished:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("completion was never signaled")
	}

	select {
	case <-finished:
		t.Fatal("completion signaled twice")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestLaunchReportsProcessFailure(t *testing.T) {
	r := New("false", hclog.NewNullLogger())

	finished := make(chan error, 1)
	err := r.Launch(context.Background(), nil, func(err error) {
		finished <- err
	})
	assert.NoError(t, err, "a process that starts and fails still launches")

	select {
	case err := <-finished:
		assert.Error(t, err, "the exit error is passed through to the completion signal")
	case <-time.After(5 * time.Second):
		t.Fatal("completion was never signaled")
	}
}

func TestLaunchFailsFastForMissingBinary(t *testing.T) {
	r := New("definitely-not-an-engine-binary", hclog.NewNullLogger())

	err := r.Launch(context.Background(), nil, func(error) {
		t.Error("onFinish must not fire when the process never started")
	})
	assert.Error(t, err)
	var cmdErr *sharederrors.CommandError
	assert.ErrorAs(t, err, &cmdErr)

	time.Sleep(100 * time.Millisecond)
}

func TestNewDefaultsToBap(t *testing.T) {
	r := New("", hclog.NewNullLogger())
	assert.Equal(t, "bap", r.binary)
}
