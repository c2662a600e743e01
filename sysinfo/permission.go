package sysinfo

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Location permission policies accepted by NewPolicyAuthority.
const (
	PolicyGranted = "granted"
	PolicyDenied  = "denied"
	PolicyPrompt  = "prompt"
)

// PolicyAuthority answers location permission requests from a configured
// policy. With PolicyPrompt it asks the user on In/Out; without an input
// stream a prompt cannot be shown and the answer is PermissionUndetermined.
type PolicyAuthority struct {
	policy string
	in     io.Reader
	out    io.Writer
}

// NewPolicyAuthority validates policy and returns an authority for it.
// in and out are only used by PolicyPrompt and may be nil.
func NewPolicyAuthority(policy string, in io.Reader, out io.Writer) (*PolicyAuthority, error) {
	policy = strings.ToLower(strings.TrimSpace(policy))
	switch policy {
	case PolicyGranted, PolicyDenied, PolicyPrompt:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}

	return &PolicyAuthority{policy: policy, in: in, out: out}, nil
}

// RequestLocation implements PermissionAuthority.
func (p *PolicyAuthority) RequestLocation(ctx context.Context) (PermissionStatus, error) {
	switch p.policy {
	case PolicyGranted:
		return PermissionGranted, nil
	case PolicyDenied:
		return PermissionDenied, nil
	}

	if p.in == nil {
		return PermissionUndetermined, nil
	}

	if p.out != nil {
		_, _ = fmt.Fprint(p.out, "Allow location lookup? [y/N] ")
	}

	answer := make(chan string, 1)
	go func() {
		line, _ := bufio.NewReader(p.in).ReadString('\n')
		answer <- line
	}()

	select {
	case <-ctx.Done():
		return PermissionUndetermined, ctx.Err()
	case line := <-answer:
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return PermissionGranted, nil
		default:
			return PermissionDenied, nil
		}
	}
}
