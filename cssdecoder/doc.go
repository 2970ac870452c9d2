// Package cssdecoder implements CssBpDecoder: belief-propagation decoding
// of a CSS quantum code's combined syndrome via two independent
// bpdecoder.Decoder instances, one per parity-check matrix.
//
// The decoder built on H_Z recovers the X-error estimate from s_Z; the
// decoder built on H_X recovers the Z-error estimate from s_X. Each bit's
// prior probability folds in the marginal rate of the error type the
// other decoder already accounts for (a Y error trips both checks), per
// the channel rates passed to New. The two decodes share no mutable
// state, so Decode runs them concurrently.
package cssdecoder
