// Copyright (c) 2024 The corvid developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/cardano-go/corvid/address"
	"github.com/cardano-go/corvid/cbor"
	"github.com/cardano-go/corvid/chaincfg"
	"github.com/cardano-go/corvid/hdkeychain"
	"github.com/cardano-go/corvid/hdpayload"
)

var hdPayloadBytes = []byte{1, 2, 3, 4, 5}

var txOutBytes = []byte{
	0x82, 0x82, 0xd8, 0x18, 0x58, 0x29, 0x83, 0x58, 0x1c, 0x83, 0xee, 0xa1, 0xb5, 0xec, 0x8e,
	0x80, 0x26, 0x65, 0x81, 0x46, 0x4a, 0xee, 0x0e, 0x2d, 0x6a, 0x45, 0xfd, 0x6d, 0x7b, 0x9e,
	0x1a, 0x98, 0x3a, 0x50, 0x48, 0xcd, 0x15, 0xa1, 0x01, 0x46, 0x45, 0x01, 0x02, 0x03, 0x04,
	0x05, 0x00, 0x1a, 0x9d, 0x45, 0x88, 0x4a, 0x18, 0x2a,
}

var txInBytes = []byte{
	0x82, 0x00, 0xd8, 0x18, 0x58, 0x26, 0x82, 0x58, 0x20, 0xaa, 0xd7, 0x8a, 0x13, 0xb5, 0x0a,
	0x01, 0x4a, 0x24, 0x63, 0x3c, 0x7d, 0x44, 0xfd, 0x8f, 0x8d, 0x18, 0xf6, 0x7b, 0xbb, 0x3f,
	0xa9, 0xcb, 0xce, 0xdf, 0x83, 0x4a, 0xc8, 0x99, 0x75, 0x9d, 0xcd, 0x19, 0x02, 0x9a,
}

var txBytes = []byte{
	0x83, 0x9f, 0x82, 0x00, 0xd8, 0x18, 0x58, 0x26, 0x82, 0x58, 0x20, 0xaa, 0xd7, 0x8a, 0x13,
	0xb5, 0x0a, 0x01, 0x4a, 0x24, 0x63, 0x3c, 0x7d, 0x44, 0xfd, 0x8f, 0x8d, 0x18, 0xf6, 0x7b,
	0xbb, 0x3f, 0xa9, 0xcb, 0xce, 0xdf, 0x83, 0x4a, 0xc8, 0x99, 0x75, 0x9d, 0xcd, 0x19, 0x02,
	0x9a, 0xff, 0x9f, 0x82, 0x82, 0xd8, 0x18, 0x58, 0x29, 0x83, 0x58, 0x1c, 0x83, 0xee, 0xa1,
	0xb5, 0xec, 0x8e, 0x80, 0x26, 0x65, 0x81, 0x46, 0x4a, 0xee, 0x0e, 0x2d, 0x6a, 0x45, 0xfd,
	0x6d, 0x7b, 0x9e, 0x1a, 0x98, 0x3a, 0x50, 0x48, 0xcd, 0x15, 0xa1, 0x01, 0x46, 0x45, 0x01,
	0x02, 0x03, 0x04, 0x05, 0x00, 0x1a, 0x9d, 0x45, 0x88, 0x4a, 0x18, 0x2a, 0xff, 0xa0,
}

var txInWitnessBytes = []byte{
	0x82, 0x00, 0xd8, 0x18, 0x58, 0x85, 0x82, 0x58, 0x40, 0x1c, 0x0c, 0x3a, 0xe1, 0x82, 0x5e,
	0x90, 0xb6, 0xdd, 0xda, 0x3f, 0x40, 0xa1, 0x22, 0xc0, 0x07, 0xe1, 0x00, 0x8e, 0x83, 0xb2,
	0xe1, 0x02, 0xc1, 0x42, 0xba, 0xef, 0xb7, 0x21, 0xd7, 0x2c, 0x1a, 0x5d, 0x36, 0x61, 0xde,
	0xb9, 0x06, 0x4f, 0x2d, 0x0e, 0x03, 0xfe, 0x85, 0xd6, 0x80, 0x70, 0xb2, 0xfe, 0x33, 0xb4,
	0x91, 0x60, 0x59, 0x65, 0x8e, 0x28, 0xac, 0x7f, 0x7f, 0x91, 0xca, 0x4b, 0x12, 0x58, 0x40,
	0x9d, 0x6d, 0x91, 0x1e, 0x58, 0x8d, 0xd4, 0xfb, 0x77, 0xcb, 0x80, 0xc2, 0xc6, 0xad, 0xbc,
	0x2b, 0x94, 0x2b, 0xce, 0xa5, 0xd8, 0xa0, 0x39, 0x22, 0x0d, 0xdc, 0xd2, 0x35, 0xcb, 0x75,
	0x86, 0x2c, 0x0c, 0x95, 0xf6, 0x2b, 0xa1, 0x11, 0xe5, 0x7d, 0x7c, 0x1a, 0x22, 0x1c, 0xf5,
	0x13, 0x3e, 0x44, 0x12, 0x88, 0x32, 0xc1, 0x49, 0x35, 0x4d, 0x1e, 0x57, 0xb6, 0x80, 0xfe,
	0x57, 0x2d, 0x76, 0x0c,
}

var txAuxBytes = []byte{
	0x82, 0x83, 0x9f, 0x82, 0x00, 0xd8, 0x18, 0x58, 0x26, 0x82, 0x58, 0x20, 0xaa, 0xd7, 0x8a,
	0x13, 0xb5, 0x0a, 0x01, 0x4a, 0x24, 0x63, 0x3c, 0x7d, 0x44, 0xfd, 0x8f, 0x8d, 0x18, 0xf6,
	0x7b, 0xbb, 0x3f, 0xa9, 0xcb, 0xce, 0xdf, 0x83, 0x4a, 0xc8, 0x99, 0x75, 0x9d, 0xcd, 0x19,
	0x02, 0x9a, 0xff, 0x9f, 0x82, 0x82, 0xd8, 0x18, 0x58, 0x29, 0x83, 0x58, 0x1c, 0x83, 0xee,
	0xa1, 0xb5, 0xec, 0x8e, 0x80, 0x26, 0x65, 0x81, 0x46, 0x4a, 0xee, 0x0e, 0x2d, 0x6a, 0x45,
	0xfd, 0x6d, 0x7b, 0x9e, 0x1a, 0x98, 0x3a, 0x50, 0x48, 0xcd, 0x15, 0xa1, 0x01, 0x46, 0x45,
	0x01, 0x02, 0x03, 0x04, 0x05, 0x00, 0x1a, 0x9d, 0x45, 0x88, 0x4a, 0x18, 0x2a, 0xff, 0xa0,
	0x81, 0x82, 0x00, 0xd8, 0x18, 0x58, 0x85, 0x82, 0x58, 0x40, 0x1c, 0x0c, 0x3a, 0xe1, 0x82,
	0x5e, 0x90, 0xb6, 0xdd, 0xda, 0x3f, 0x40, 0xa1, 0x22, 0xc0, 0x07, 0xe1, 0x00, 0x8e, 0x83,
	0xb2, 0xe1, 0x02, 0xc1, 0x42, 0xba, 0xef, 0xb7, 0x21, 0xd7, 0x2c, 0x1a, 0x5d, 0x36, 0x61,
	0xde, 0xb9, 0x06, 0x4f, 0x2d, 0x0e, 0x03, 0xfe, 0x85, 0xd6, 0x80, 0x70, 0xb2, 0xfe, 0x33,
	0xb4, 0x91, 0x60, 0x59, 0x65, 0x8e, 0x28, 0xac, 0x7f, 0x7f, 0x91, 0xca, 0x4b, 0x12, 0x58,
	0x40, 0x9d, 0x6d, 0x91, 0x1e, 0x58, 0x8d, 0xd4, 0xfb, 0x77, 0xcb, 0x80, 0xc2, 0xc6, 0xad,
	0xbc, 0x2b, 0x94, 0x2b, 0xce, 0xa5, 0xd8, 0xa0, 0x39, 0x22, 0x0d, 0xdc, 0xd2, 0x35, 0xcb,
	0x75, 0x86, 0x2c, 0x0c, 0x95, 0xf6, 0x2b, 0xa1, 0x11, 0xe5, 0x7d, 0x7c, 0x1a, 0x22, 0x1c,
	0xf5, 0x13, 0x3e, 0x44, 0x12, 0x88, 0x32, 0xc1, 0x49, 0x35, 0x4d, 0x1e, 0x57, 0xb6, 0x80,
	0xfe, 0x57, 0x2d, 0x76, 0x0c,
}

func testRootKey(t *testing.T) hdkeychain.XPrv {
	t.Helper()
	seed := make([]byte, 32)
	return hdkeychain.RootKeyFromDaedalusSeed(seed)
}

func testExtendedAddr(t *testing.T, pk hdkeychain.XPub) address.ExtendedAddr {
	t.Helper()
	sd := address.NewPubKeySpendingData(pk)
	attrs := address.NewSingleKeyAttributes(address.NewStakeholderId(pk), hdPayloadBytes)
	ea, err := address.NewExtendedAddr(address.ATPubKey, sd, attrs)
	if err != nil {
		t.Fatalf("NewExtendedAddr: %v", err)
	}
	return ea
}

func TestTxBytesLength(t *testing.T) {
	if len(txBytes) != 104 {
		t.Fatalf("txBytes length = %d, want 104", len(txBytes))
	}
	if len(txInWitnessBytes) != 139 {
		t.Fatalf("txInWitnessBytes length = %d, want 139", len(txInWitnessBytes))
	}
}

func TestDecodeTxOut(t *testing.T) {
	if _, err := DecodeTx(nil); err == nil {
		t.Fatalf("DecodeTx(nil) unexpectedly succeeded")
	}

	d := cbor.NewDeserializer(txOutBytes)
	out, err := decodeTxOut(d)
	if err != nil {
		t.Fatalf("decodeTxOut: %v", err)
	}
	if out.Value != 42 {
		t.Fatalf("Value = %d, want 42", out.Value)
	}
	if out.Address.AddrType != address.ATPubKey {
		t.Fatalf("AddrType = %v, want ATPubKey", out.Address.AddrType)
	}
	if !out.Address.Attributes.StakeDistribution.IsBootstrapEra() {
		t.Fatalf("expected bootstrap era stake distribution")
	}
	if !bytes.Equal(out.Address.Attributes.DerivationPath, hdPayloadBytes) {
		t.Fatalf("DerivationPath = %x, want %x", out.Address.Attributes.DerivationPath, hdPayloadBytes)
	}
}

func TestTxOutEncodeDecodeRoundTrip(t *testing.T) {
	root := testRootKey(t)
	pk := root.Public()
	ea := testExtendedAddr(t, pk)
	value, err := NewCoin(42)
	if err != nil {
		t.Fatalf("NewCoin: %v", err)
	}
	out := NewTxOut(ea, value)

	s := cbor.NewSerializer()
	out.encode(s)

	d := cbor.NewDeserializer(s.Bytes())
	decoded, err := decodeTxOut(d)
	if err != nil {
		t.Fatalf("decodeTxOut: %v", err)
	}
	if decoded.Value != out.Value ||
		decoded.Address.Addr != out.Address.Addr ||
		decoded.Address.AddrType != out.Address.AddrType ||
		!bytes.Equal(decoded.Address.Attributes.DerivationPath, out.Address.Attributes.DerivationPath) {
		t.Fatalf("round trip mismatch:\ngot:  %s\nwant: %s", spew.Sdump(decoded), spew.Sdump(out))
	}
}

func TestDecodeTxoPointer(t *testing.T) {
	d := cbor.NewDeserializer(txInBytes)
	in, err := decodeTxoPointer(d)
	if err != nil {
		t.Fatalf("decodeTxoPointer: %v", err)
	}
	if in.Index != 666 {
		t.Fatalf("Index = %d, want 666", in.Index)
	}
}

func TestDecodeTxMatchesReference(t *testing.T) {
	tx, err := DecodeTx(txBytes)
	if err != nil {
		t.Fatalf("DecodeTx: %v", err)
	}
	if len(tx.Inputs) != 1 || tx.Inputs[0].Index != 666 {
		t.Fatalf("unexpected inputs: %s", spew.Sdump(tx.Inputs))
	}
	if len(tx.Outputs) != 1 || tx.Outputs[0].Value != 42 {
		t.Fatalf("unexpected outputs: %s", spew.Sdump(tx.Outputs))
	}
	if !bytes.Equal(tx.Bytes(), txBytes) {
		t.Fatalf("re-encode mismatch:\ngot:  %x\nwant: %x", tx.Bytes(), txBytes)
	}
}

func TestTxInWitnessMatchesReference(t *testing.T) {
	tx, err := DecodeTx(txBytes)
	if err != nil {
		t.Fatalf("DecodeTx: %v", err)
	}
	root := testRootKey(t)

	witness := NewPkWitness(&chaincfg.MainNetParams, root, tx.Id())

	s := cbor.NewSerializer()
	if err := witness.encode(s); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(s.Bytes(), txInWitnessBytes) {
		t.Fatalf("witness mismatch:\ngot:  %x\nwant: %x", s.Bytes(), txInWitnessBytes)
	}

	d := cbor.NewDeserializer(txInWitnessBytes)
	decoded, err := decodeTxInWitness(d)
	if err != nil {
		t.Fatalf("decodeTxInWitness: %v", err)
	}
	if decoded != witness {
		t.Fatalf("decoded witness does not match signed witness")
	}
}

func TestTxInWitnessVerify(t *testing.T) {
	root := testRootKey(t)
	pk := root.Public()
	ea := testExtendedAddr(t, pk)

	txid := [32]byte{}
	txo := NewTxoPointer(txid, 666)
	value, _ := NewCoin(42)
	txout := NewTxOut(ea, value)
	tx := NewTx([]TxoPointer{txo}, []TxOut{txout})

	witness := NewPkWitness(&chaincfg.MainNetParams, root, tx.Id())

	okAddr, err := witness.VerifyAddress(ea)
	if err != nil || !okAddr {
		t.Fatalf("VerifyAddress = %v, %v", okAddr, err)
	}
	okTx, err := witness.VerifyTx(&chaincfg.MainNetParams, tx)
	if err != nil || !okTx {
		t.Fatalf("VerifyTx = %v, %v", okTx, err)
	}
	ok, err := witness.Verify(&chaincfg.MainNetParams, ea, tx)
	if err != nil || !ok {
		t.Fatalf("Verify = %v, %v", ok, err)
	}

	// a witness signed under a different protocol magic must not verify
	okWrongMagic, err := witness.VerifyTx(&chaincfg.TestNetParams, tx)
	if err != nil {
		t.Fatalf("VerifyTx: %v", err)
	}
	if okWrongMagic {
		t.Fatalf("witness verified under the wrong protocol magic")
	}
}

func TestTxAuxEncodeDecode(t *testing.T) {
	tx, err := DecodeTx(txBytes)
	if err != nil {
		t.Fatalf("DecodeTx: %v", err)
	}
	d := cbor.NewDeserializer(txInWitnessBytes)
	witness, err := decodeTxInWitness(d)
	if err != nil {
		t.Fatalf("decodeTxInWitness: %v", err)
	}

	aux := NewTxAux(tx, []TxInWitness{witness})
	got, err := aux.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.Equal(got, txAuxBytes) {
		t.Fatalf("txaux mismatch:\ngot:  %x\nwant: %x", got, txAuxBytes)
	}

	decoded, err := DecodeTxAux(got)
	if err != nil {
		t.Fatalf("DecodeTxAux: %v", err)
	}
	if decoded.Tx.Id() != aux.Tx.Id() || len(decoded.Witnesses) != 1 {
		t.Fatalf("round trip mismatch: %s", spew.Sdump(decoded))
	}
}

func TestMerkleRootSingleItemIsLeafHash(t *testing.T) {
	item := []byte{0x01, 0x02, 0x03}
	root := MerkleRoot([][]byte{item})
	want := merkleLeafHash(item)
	if root != want {
		t.Fatalf("MerkleRoot mismatch for single item")
	}
}

func TestGenerateTxProof(t *testing.T) {
	tx, err := DecodeTx(txBytes)
	if err != nil {
		t.Fatalf("DecodeTx: %v", err)
	}
	d := cbor.NewDeserializer(txInWitnessBytes)
	witness, err := decodeTxInWitness(d)
	if err != nil {
		t.Fatalf("decodeTxInWitness: %v", err)
	}
	aux := NewTxAux(tx, []TxInWitness{witness})

	proof, err := GenerateTxProof([]TxAux{aux})
	if err != nil {
		t.Fatalf("GenerateTxProof: %v", err)
	}
	if proof.Number != 1 {
		t.Fatalf("Number = %d, want 1", proof.Number)
	}
	wantRoot := merkleLeafHash(tx.Bytes())
	if proof.Root != wantRoot {
		t.Fatalf("Root mismatch")
	}

	s := cbor.NewSerializer()
	proof.encode(s)
	decoded, err := DecodeTxProof(s.Bytes())
	if err != nil {
		t.Fatalf("DecodeTxProof: %v", err)
	}
	if decoded != proof {
		t.Fatalf("TxProof round trip mismatch")
	}
}

func TestHDPayloadRoundTripThroughTxOut(t *testing.T) {
	root := testRootKey(t)
	pk := root.Public()
	key, err := hdpayload.DeriveKey(pk)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	path := hdpayload.Path{0, 1}
	enc := key.Encrypt(path)

	sd := address.NewPubKeySpendingData(pk)
	attrs := address.NewSingleKeyAttributes(address.NewStakeholderId(pk), enc)
	ea, err := address.NewExtendedAddr(address.ATPubKey, sd, attrs)
	if err != nil {
		t.Fatalf("NewExtendedAddr: %v", err)
	}
	value, _ := NewCoin(1)
	out := NewTxOut(ea, value)

	s := cbor.NewSerializer()
	out.encode(s)
	decoded, err := decodeTxOut(cbor.NewDeserializer(s.Bytes()))
	if err != nil {
		t.Fatalf("decodeTxOut: %v", err)
	}

	got, err := key.Decrypt(decoded.Address.Attributes.DerivationPath)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if len(got) != len(path) || got[0] != path[0] || got[1] != path[1] {
		t.Fatalf("decrypted path = %v, want %v", got, path)
	}
}
