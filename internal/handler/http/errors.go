// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/market-proxy/internal/app"
)

// Sentinel errors raised while decoding an inbound request, before the
// service layer is reached.
var (
	// ErrInvalidQueryParam is returned when a numeric query parameter such as
	// offset or limit is present but is not an integer.
	ErrInvalidQueryParam = errors.New(app.MsgInvalidQueryParam)

	// ErrInvalidJSON is returned when the request body of buy or withdraw is
	// not a JSON object of the expected shape.
	ErrInvalidJSON = errors.New(app.MsgInvalidJSON)

	// ErrRequestTooLarge is returned when a request body exceeds maxBodyBytes.
	ErrRequestTooLarge = errors.New(app.MsgRequestTooLarge)
)
