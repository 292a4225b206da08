package registry

// mainnetYAML mirrors testnetYAML's script set against mainnet
// deployments. The secp256k1 code hashes are network-independent (the
// lock scripts themselves are identical bytecode); only the
// deployment out-points differ.
const mainnetYAML = `
network: mainnet
scripts:
  - name: secp256k1_sighash
    code_hash: "0x9bd7e06f3ecf4be0f2fcd2188b23f1b9fcc88e5d4b65a8637b17723bbda3cce"
    hash_type: type
    dep_type: dep_group
    tx_hash: "0x71a7ba8fc96349fea0ed3a5c47992e3b4084b031a42264a018e0072e8172e46"
    index: 0
  - name: secp256k1_multisig
    code_hash: "0x5c5069eb0857efc65e1bca0c07df34c31663b3622fd3876c876320fc9634e2a"
    hash_type: type
    dep_type: dep_group
    tx_hash: "0x71a7ba8fc96349fea0ed3a5c47992e3b4084b031a42264a018e0072e8172e46"
    index: 1
  - name: cheque
    code_hash: "0xe4d4ecc6e5f9a059bf2f7a82cca292083aebc0c421566a52484fe2ec51a9fb0"
    hash_type: type
    dep_type: code
    tx_hash: "0x04632cc459459cf5c9d384b43dee3e36f542a464bdd4127be7d6618ac6f8df0"
    index: 0
  - name: sudt
    code_hash: "0x5e7a36a77e68eecc013dfa2fe63f2177e238c9f6f382b89ad32f3fc9c6b0c3b8"
    hash_type: type
    dep_type: code
    tx_hash: "0xc7813f6a415144643970c2e88e0bb6ca6a8edc5dd7c1022cb6cf9a4a70aa8943"
    index: 0
`

// Mainnet returns the default mainnet script registry.
func Mainnet() (*Registry, error) {
	return Load([]byte(mainnetYAML))
}
