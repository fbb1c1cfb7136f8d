// Package ringtone maps ringtone semantics to and from the opaque locator
// strings exchanged with the native sound picker.
//
// Identity is a closed sum of four cases: silent, system default, app
// default and an explicit sound. Encode and Decode are pure and total;
// ResolveTitle is the one asynchronous operation, degrading every fault to
// the silent label except cancellation, which always propagates.
package ringtone
