package registry

// testnetYAML describes the well-known testnet deployments of the
// scripts this module's builders and signers target: secp256k1
// sighash-all and multisig-all (both shipped as a dep group), the
// cheque lock, and a SUDT-shaped type script used by tests as the
// cheque token.
const testnetYAML = `
network: testnet
scripts:
  - name: secp256k1_sighash
    code_hash: "0x9bd7e06f3ecf4be0f2fcd2188b23f1b9fcc88e5d4b65a8637b17723bbda3cce"
    hash_type: type
    dep_type: dep_group
    tx_hash: "0xf8de3bb47d055cdf460d93a2a6e1b05f7432f9777c8c474abf4eec1d4aee5d3"
    index: 0
  - name: secp256k1_multisig
    code_hash: "0x5c5069eb0857efc65e1bca0c07df34c31663b3622fd3876c876320fc9634e2a"
    hash_type: type
    dep_type: dep_group
    tx_hash: "0xf8de3bb47d055cdf460d93a2a6e1b05f7432f9777c8c474abf4eec1d4aee5d3"
    index: 1
  - name: cheque
    code_hash: "0x60d5f39efce409c587cb9ea359cefdead650ca128f0bd9cb3855348f98c70c5"
    hash_type: type
    dep_type: code
    tx_hash: "0x7f96858be0a9d584b4a9ea190e0684a4ab1200f4965dcac6d1ad6f183c0d042"
    index: 0
  - name: sudt
    code_hash: "0xc5e5dcf215925f7ef4dfaf5f4b4f105bc321c02776d6e7d52a1db3fcd9d011a"
    hash_type: type
    dep_type: code
    tx_hash: "0xe12877ed0e0e3ecf0aedca9109a1f9a28ac76d46bc3d6a83cf8fb71e01ba8de3"
    index: 0
`

// Testnet returns the default testnet script registry.
func Testnet() (*Registry, error) {
	return Load([]byte(testnetYAML))
}
