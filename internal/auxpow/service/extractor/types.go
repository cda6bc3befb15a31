package extractor

import (
	"context"
	"iter"
	"time"

	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/model"
	"github.com/goodnatureofminers/auxpowstats/internal/auxpow/namecoin"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainReader interface {
		Tip(ctx context.Context) (uint64, error)
		Paginate(ctx context.Context, start, end, pageSize uint64) iter.Seq2[[]namecoin.Block, error]
	}
	AddressNormalizer interface {
		Reencode(input string) (string, error)
	}
	DatasetWriter interface {
		Next() uint64
		WritePage(records []model.BlockRecord) error
	}
	Metrics interface {
		ObserveTip(err error, tip uint64)
		ObservePage(err error, size int, started time.Time)
		ObserveWrittenHeight(height uint64)
		ObserveAddressFailure(reason string)
	}
)
