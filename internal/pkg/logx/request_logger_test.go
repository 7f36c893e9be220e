package logx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnonymizeIP(t *testing.T) {
	assert.Equal(t, "203.0.113.0", anonymizeIP("203.0.113.77:51234"))
	assert.Equal(t, "198.51.100.0", anonymizeIP("198.51.100.9"))
	assert.Equal(t, "127.0.0.1", anonymizeIP("[::1]:8080"))
	assert.Equal(t, "2001:db8:1:2::", anonymizeIP("[2001:db8:1:2:3:4:5:6]:443"))
	assert.Equal(t, "unknown_ip", anonymizeIP("not-an-ip"))
}
