package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNilObservabilityIsNoOp(t *testing.T) {
	var o *Observability
	assert.NotPanics(t, func() {
		o.RecordInvocation(context.Background(), "FindPet", "success")
		o.RecordDuration(context.Background(), time.Millisecond, "success")
		o.Shutdown()
	})

	empty := &Observability{}
	assert.NotPanics(t, func() {
		empty.RecordInvocation(context.Background(), "FindPet", "error")
		empty.Shutdown()
	})
}
