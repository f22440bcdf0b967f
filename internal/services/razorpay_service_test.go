package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRupeesToPaise(t *testing.T) {
	assert.Equal(t, 100000, rupeesToPaise(1000))
	assert.Equal(t, 199999, rupeesToPaise(1999.99))
	assert.Equal(t, 1, rupeesToPaise(0.01))
	assert.Equal(t, 0, rupeesToPaise(0))
}

func TestVerifySignature(t *testing.T) {
	svc := &RazorpayService{keySecret: "test_secret"}

	// HMAC-SHA256("order_abc|pay_xyz", "test_secret")
	valid := "a734976b4a9aa4403181acd25d87b09ad8cb31f7d73be91e2bb9eb5c517ca319"

	assert.True(t, svc.verifySignature("order_abc|pay_xyz", valid))
	assert.False(t, svc.verifySignature("order_abc|pay_xyz", "deadbeef"))
	assert.False(t, svc.verifySignature("order_abc|pay_other", valid))
}
