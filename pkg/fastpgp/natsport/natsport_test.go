package natsport

import (
	"context"
	"errors"
	"testing"
	"time"

	natsdTest "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"

	"github.com/fastpgp/fastpgp-go/pkg/fastpgp/boundary"
)

func runServer(t *testing.T) *nats.Conn {
	t.Helper()
	opts := natsdTest.DefaultTestOptions
	opts.Port = -1
	ns := natsdTest.RunServer(&opts)
	t.Cleanup(ns.Shutdown)

	nc, err := nats.Connect(ns.ClientURL())
	require.NoError(t, err)
	t.Cleanup(nc.Close)
	return nc
}

var echo = boundary.NativeFunc(func(name string, payload []byte) ([]byte, string, error) {
	switch name {
	case "fail":
		return nil, "bad passphrase", nil
	case "broken":
		return nil, "", errors.New("library missing")
	case "absent":
		return nil, "", nil
	}
	return append([]byte(name+":"), payload...), "", nil
})

func await(t *testing.T, ch <-chan boundary.ArrayReply) (boundary.ArrayReply, bool) {
	t.Helper()
	select {
	case r, ok := <-ch:
		return r, ok
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reply")
		return boundary.ArrayReply{}, false
	}
}

func TestArrayRoundTrip(t *testing.T) {
	nc := runServer(t)
	r := NewResponder(nc, echo)
	require.NoError(t, r.Start())
	defer r.Stop()

	c := NewClient(nc)
	reply, ok := await(t, c.Send(context.Background(), "sign", []int{0, 255}))
	require.True(t, ok)
	require.NoError(t, reply.Err)
	require.Nil(t, reply.Bytes)
	require.Equal(t, []int{'s', 'i', 'g', 'n', ':', 0, 255}, reply.Ints)
}

func TestBinaryRoundTrip(t *testing.T) {
	nc := runServer(t)
	r := NewResponder(nc, echo, WithEncoding(EncodingBinary), WithSubject("custom.subject"))
	require.NoError(t, r.Start())
	defer r.Stop()

	c := NewClient(nc, WithSubject("custom.subject"))
	require.Equal(t, "custom.subject", c.Subject())
	reply, ok := await(t, c.Send(context.Background(), "encrypt", []int{9}))
	require.True(t, ok)
	require.NoError(t, reply.Err)
	require.Equal(t, []byte("encrypt:\x09"), reply.Bytes)
}

func TestSignalAndEngineFailure(t *testing.T) {
	nc := runServer(t)
	r := NewResponder(nc, echo)
	require.NoError(t, r.Start())
	defer r.Stop()
	c := NewClient(nc)

	reply, _ := await(t, c.Send(context.Background(), "fail", nil))
	var sig *boundary.SignalError
	require.True(t, errors.As(reply.Err, &sig))
	require.Equal(t, "fail", sig.Op)
	require.Equal(t, "bad passphrase", sig.Signal)

	reply, _ = await(t, c.Send(context.Background(), "broken", nil))
	require.Error(t, reply.Err)
	require.Contains(t, reply.Err.Error(), "library missing")
}

func TestNoResponders(t *testing.T) {
	nc := runServer(t)
	c := NewClient(nc, WithTimeout(time.Second))

	reply, ok := await(t, c.Send(context.Background(), "verify", nil))
	require.True(t, ok)
	require.ErrorIs(t, reply.Err, nats.ErrNoResponders)
}

func TestUnlabelledEmptyReplyIsAbsent(t *testing.T) {
	nc := runServer(t)
	sub, err := nc.Subscribe(DefaultSubject, func(m *nats.Msg) { _ = m.Respond(nil) })
	require.NoError(t, err)
	defer sub.Unsubscribe()
	require.NoError(t, nc.Flush())

	_, ok := await(t, NewClient(nc).Send(context.Background(), "generate", nil))
	require.False(t, ok)
}

func TestResponderSendsAbsentMessageUnlabelled(t *testing.T) {
	for _, enc := range []Encoding{EncodingArray, EncodingBinary} {
		t.Run(string(enc), func(t *testing.T) {
			nc := runServer(t)
			r := NewResponder(nc, echo, WithEncoding(enc))
			require.NoError(t, r.Start())
			defer r.Stop()

			msg, err := nc.Request(DefaultSubject, mustRequest(t, "absent", []int{1}), 5*time.Second)
			require.NoError(t, err)
			require.Empty(t, msg.Header.Get(HeaderEncoding))
			require.Empty(t, msg.Data)

			_, ok := await(t, NewClient(nc).Send(context.Background(), "absent", []int{1}))
			require.False(t, ok)
		})
	}
}

func mustRequest(t *testing.T, name string, payload []int) []byte {
	t.Helper()
	data, err := encodeRequest(name, payload)
	require.NoError(t, err)
	return data
}

func TestArrayLengthMismatch(t *testing.T) {
	nc := runServer(t)
	sub, err := nc.Subscribe(DefaultSubject, func(m *nats.Msg) {
		reply := nats.NewMsg(m.Reply)
		reply.Header.Set(HeaderEncoding, string(EncodingArray))
		reply.Data = []byte(`{"length":3,"data":[1,2]}`)
		_ = m.RespondMsg(reply)
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()
	require.NoError(t, nc.Flush())

	reply, ok := await(t, NewClient(nc).Send(context.Background(), "decrypt", []int{1}))
	require.True(t, ok)
	require.ErrorIs(t, reply.Err, ErrLengthMismatch)
}

func TestResponderRejectsBadRequest(t *testing.T) {
	nc := runServer(t)
	r := NewResponder(nc, echo, WithQueue(""))
	require.NoError(t, r.Start())
	require.Error(t, r.Start())
	defer r.Stop()

	msg, err := nc.Request(DefaultSubject, []byte("not json"), 5*time.Second)
	require.NoError(t, err)
	require.Equal(t, string(EncodingError), msg.Header.Get(HeaderEncoding))

	msg, err = nc.Request(DefaultSubject, []byte(`{"name":"sign","payload":[300]}`), 5*time.Second)
	require.NoError(t, err)
	require.Equal(t, string(EncodingError), msg.Header.Get(HeaderEncoding))
	require.Contains(t, string(msg.Data), "byte range")
}

func TestResponderStopIsIdempotent(t *testing.T) {
	nc := runServer(t)
	r := NewResponder(nc, echo)
	require.NoError(t, r.Start())
	require.NoError(t, r.Stop())
	require.NoError(t, r.Stop())
}
