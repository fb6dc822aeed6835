package service

import (
	"errors"

	"github.com/MKhiriev/market-proxy/internal/app"
)

var (
	ErrInvalidDataProvided = errors.New(app.MsgInvalidDataProvided)

	ErrMarketAdapterIsNotSpecified = errors.New("market adapter is not specified")
)
