package loopback

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/boundary"
)

func echo() boundary.Native {
	return boundary.NativeFunc(func(name string, payload []byte) ([]byte, string, error) {
		switch name {
		case "fail":
			return nil, "boom", nil
		case "absent":
			return nil, "", nil
		}
		return append([]byte(name+":"), payload...), "", nil
	})
}

func receive(t *testing.T, ch <-chan boundary.ArrayReply) (boundary.ArrayReply, bool) {
	t.Helper()
	select {
	case r, ok := <-ch:
		return r, ok
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for reply")
		return boundary.ArrayReply{}, false
	}
}

func TestEndpointArrayReply(t *testing.T) {
	ep := New(echo())
	defer ep.Close()

	reply, ok := receive(t, ep.Send(context.Background(), "op", []int{1, 2}))
	require.True(t, ok)
	require.NoError(t, reply.Err)
	require.Nil(t, reply.Bytes)
	require.Equal(t, []int{'o', 'p', ':', 1, 2}, reply.Ints)
}

func TestEndpointBinaryReply(t *testing.T) {
	ep := New(echo(), WithEncoding(EncodingBinary))
	defer ep.Close()

	reply, ok := receive(t, ep.Send(context.Background(), "op", []int{7}))
	require.True(t, ok)
	require.Equal(t, []byte("op:\x07"), reply.Bytes)
}

func TestEndpointKeepsAbsentMessageAbsent(t *testing.T) {
	for _, enc := range []Encoding{EncodingArray, EncodingBinary} {
		t.Run(enc.String(), func(t *testing.T) {
			ep := New(echo(), WithEncoding(enc))
			defer ep.Close()

			reply, ok := receive(t, ep.Send(context.Background(), "absent", []int{1}))
			require.True(t, ok)
			require.NoError(t, reply.Err)
			require.True(t, reply.Absent())
		})
	}
}

func TestEndpointDropClosesWithoutReply(t *testing.T) {
	ep := New(echo(), WithEncoding(EncodingDrop))
	defer ep.Close()

	_, ok := receive(t, ep.Send(context.Background(), "op", nil))
	require.False(t, ok)
}

func TestEndpointSignal(t *testing.T) {
	ep := New(echo())
	defer ep.Close()

	reply, ok := receive(t, ep.Send(context.Background(), "fail", nil))
	require.True(t, ok)
	var sig *boundary.SignalError
	require.True(t, errors.As(reply.Err, &sig))
	require.Equal(t, "boom", sig.Signal)
}

func TestEndpointRejectsOutOfRangePayload(t *testing.T) {
	ep := New(echo())
	defer ep.Close()

	reply, _ := receive(t, ep.Send(context.Background(), "op", []int{256}))
	require.ErrorIs(t, reply.Err, boundary.ErrByteRange)
}

func TestEndpointClosed(t *testing.T) {
	ep := New(echo())
	require.NoError(t, ep.Close())
	require.NoError(t, ep.Close())

	reply, ok := receive(t, ep.Send(context.Background(), "op", nil))
	require.True(t, ok)
	require.ErrorIs(t, reply.Err, ErrClosed)
}

func TestEndpointConcurrentCallsKeepTheirReplies(t *testing.T) {
	ep := New(echo(), WithWorkers(2))
	defer ep.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	const calls = 32
	var wg sync.WaitGroup
	wg.Add(calls)
	for i := 0; i < calls; i++ {
		go func(i int) {
			defer wg.Done()
			select {
			case reply := <-ep.Send(ctx, "op", []int{i}):
				if reply.Err != nil || len(reply.Ints) != 4 || reply.Ints[3] != i {
					t.Errorf("call %d got %+v", i, reply)
				}
			case <-ctx.Done():
				t.Errorf("call %d: %v", i, ctx.Err())
			}
		}(i)
	}
	wg.Wait()
	require.NoError(t, ep.Close())
	require.Zero(t, ep.Pending())
}
