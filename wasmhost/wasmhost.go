package wasmhost

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/simkit/simload/workload"
)

// ModuleName is the import namespace guest workloads link against.
const ModuleName = "simload"

// Result codes returned by get_option.
const (
	// OptionAbsent reports that the name was never configured, already
	// consumed, or failed to decode.
	OptionAbsent int32 = -1
	// OptionTooSmall reports that the guest buffer cannot hold the value
	// plus its terminator.
	OptionTooSmall int32 = -2
)

// Instantiate registers wc as the "simload" host module on rt. Every
// exported function maps one-to-one onto a context operation, so call
// order and determinism guarantees carry over unchanged. Marshaling
// failures trap the calling function.
func Instantiate(ctx context.Context, rt wazero.Runtime, wc *workload.Context) (api.Module, error) {
	b := rt.NewHostModuleBuilder(ModuleName)

	b.NewFunctionBuilder().
		WithFunc(func(_ context.Context, mod api.Module, sev, namePtr, pairsPtr, pairCount uint32) {
			name := mustRead(mod.Memory(), namePtr)
			details := make([]workload.Pair, 0, pairCount)
			for i := uint32(0); i < pairCount; i++ {
				keyPtr, ok1 := mod.Memory().ReadUint32Le(pairsPtr + i*8)
				valPtr, ok2 := mod.Memory().ReadUint32Le(pairsPtr + i*8 + 4)
				if !ok1 || !ok2 {
					panic("trace pair table out of bounds")
				}
				details = append(details, workload.Pair{
					Key: mustRead(mod.Memory(), keyPtr),
					Val: mustRead(mod.Memory(), valPtr),
				})
			}
			wc.Trace(workload.Severity(sev), name, details...)
		}).
		Export("trace")

	b.NewFunctionBuilder().
		WithFunc(func(_ context.Context) uint64 { return wc.ProcessID() }).
		Export("get_process_id")

	b.NewFunctionBuilder().
		WithFunc(func(_ context.Context, id uint64) { wc.SetProcessID(id) }).
		Export("set_process_id")

	b.NewFunctionBuilder().
		WithFunc(func(_ context.Context) float64 { return wc.Now() }).
		Export("now")

	b.NewFunctionBuilder().
		WithFunc(func(_ context.Context) uint32 { return wc.Rnd() }).
		Export("rnd")

	b.NewFunctionBuilder().
		WithFunc(func(_ context.Context, mod api.Module, namePtr, dstPtr, dstCap uint32) int32 {
			name := mustRead(mod.Memory(), namePtr)
			value, ok := wc.OptionString(name)
			if !ok {
				return OptionAbsent
			}
			n, err := writeCString(mod.Memory(), dstPtr, dstCap, value)
			if err != nil {
				return OptionTooSmall
			}
			return n
		}).
		Export("get_option")

	b.NewFunctionBuilder().
		WithFunc(func(_ context.Context) int32 { return wc.ClientID() }).
		Export("client_id")

	b.NewFunctionBuilder().
		WithFunc(func(_ context.Context) int32 { return wc.ClientCount() }).
		Export("client_count")

	b.NewFunctionBuilder().
		WithFunc(func(_ context.Context) int64 { return wc.SharedRandomNumber() }).
		Export("shared_random_number")

	return b.Instantiate(ctx)
}

func mustRead(mem api.Memory, ptr uint32) string {
	s, err := readCString(mem, ptr)
	if err != nil {
		panic(err)
	}
	return s
}
