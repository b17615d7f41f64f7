package request

import "encoding/json"

// DepositPaymentCreateRequest is the wrapped form of the deposit payload.
//
// `mp_payload` is forwarded as raw JSON to support varying Mercado Pago
// schemas. The bare payload is accepted too.
type DepositPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
