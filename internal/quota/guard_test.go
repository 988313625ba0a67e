package quota

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/EgorLis/media-vault/internal/domain"
)

type staticSize struct {
	total int64
	err   error
}

func (s staticSize) TotalSize(ctx context.Context) (int64, error) { return s.total, s.err }

func testLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func TestAdmit(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		limit     int64
		candidate int64
		wantErr   error
	}{
		{name: "fits", total: 0, limit: 1000, candidate: 1000, wantErr: nil},
		{name: "fits with existing data", total: 900, limit: 1000, candidate: 100, wantErr: nil},
		{name: "one byte over", total: 900, limit: 1000, candidate: 101, wantErr: domain.ErrCapacityExceeded},
		{name: "rejected then smaller fits", total: 900, limit: 1000, candidate: 90, wantErr: nil},
		{name: "zero candidate", total: 1000, limit: 1000, candidate: 0, wantErr: nil},
		{name: "already full", total: 1000, limit: 1000, candidate: 1, wantErr: domain.ErrCapacityExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(testLogger(), staticSize{total: tt.total}, tt.limit)
			err := g.Admit(context.Background(), tt.candidate)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Admit(%d) with total=%d limit=%d: err = %v, want %v",
					tt.candidate, tt.total, tt.limit, err, tt.wantErr)
			}
		})
	}
}

func TestAdmitSourceError(t *testing.T) {
	srcErr := errors.New("db down")
	g := New(testLogger(), staticSize{err: srcErr}, 1000)

	err := g.Admit(context.Background(), 1)
	if !errors.Is(err, srcErr) {
		t.Fatalf("expected source error to pass through, got %v", err)
	}
	if errors.Is(err, domain.ErrCapacityExceeded) {
		t.Fatalf("source error must not be reported as capacity exhaustion")
	}
}

func TestLimit(t *testing.T) {
	g := New(testLogger(), staticSize{}, 512<<20)
	if g.Limit() != 512<<20 {
		t.Fatalf("Limit() = %d", g.Limit())
	}
}
