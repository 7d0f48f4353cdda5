//go:build unit

package request_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	reqdto "bounce-booking/internal/handler/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeStrict(body string, dst any) error {
	dec := json.NewDecoder(bytes.NewBufferString(body))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func TestFieldErrors(t *testing.T) {
	t.Run("unknown field", func(t *testing.T) {
		var req reqdto.CheckoutRequest
		err := decodeStrict(`{"postalCode":"75001"}`, &req)
		require.Error(t, err)
		assert.Equal(t, map[string]string{"postalCode": "unknown field"}, reqdto.FieldErrors(err))
	})

	t.Run("wrong type", func(t *testing.T) {
		var req reqdto.CheckoutRequest
		err := decodeStrict(`{"guestsCount":"twelve"}`, &req)
		require.Error(t, err)
		assert.Equal(t, map[string]string{"guestsCount": "must be of type int"}, reqdto.FieldErrors(err))
	})

	t.Run("published names decode", func(t *testing.T) {
		var req reqdto.CheckoutRequest
		err := decodeStrict(`{"eventZip":"75001","addOns":[{"id":"6f1c0a5e-0000-4000-8000-000000000001","quantity":2}]}`, &req)
		require.NoError(t, err)
		assert.Equal(t, "75001", req.EventZip)
		require.Len(t, req.AddOns, 1)
		assert.Equal(t, 2, req.AddOns[0].Quantity)
	})

	t.Run("unrelated error", func(t *testing.T) {
		assert.Nil(t, reqdto.FieldErrors(errors.New("unexpected EOF")))
		assert.Nil(t, reqdto.FieldErrors(nil))
	})
}
