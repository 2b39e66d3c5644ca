package netutil

import (
	"fmt"
	"net"
	"strings"
)

// SelectBindAddr returns the preferred address when it is free. When it is
// busy and autoFallback is set, the candidate list is tried in order.
func SelectBindAddr(preferred string, candidates []string, autoFallback bool) (string, error) {
	tried := make([]string, 0, len(candidates)+1)

	if preferred != "" {
		ok, err := IsAddrAvailable(preferred)
		if err != nil {
			return "", err
		}
		if ok {
			return preferred, nil
		}
		if !autoFallback {
			return "", fmt.Errorf("preferred bind address in use: %s", preferred)
		}
		tried = append(tried, preferred)
	}

	for _, addr := range candidates {
		if addr == preferred {
			continue
		}
		ok, err := IsAddrAvailable(addr)
		if err != nil {
			return "", err
		}
		if ok {
			return addr, nil
		}
		tried = append(tried, addr)
	}

	return "", fmt.Errorf("no available dashboard bind address (tried %s)", strings.Join(tried, ", "))
}

// IsAddrAvailable returns true when an address can be listened on.
func IsAddrAvailable(addr string) (bool, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return false, nil
	}
	if closeErr := ln.Close(); closeErr != nil {
		return false, closeErr
	}
	return true, nil
}
