// Package commands defines the bigcrypt CLI and wires dependencies for subcommands.
//
// Commands
//
//   - calc         Signed hex arithmetic: add, sub, mul, div, mod, divmod, cmp, modexp
//   - keygen       Generate and store a Diffie-Hellman key pair
//   - pubkey       Print the public value
//   - fingerprint  Print the public key fingerprint
//   - agree        Derive a shared key with a peer
//
// # Implementation
//
// The root command builds the app (logger, key store, key service) before any
// key subcommand runs and closes it afterwards. calc overrides the hook and
// needs no key directory.
package commands
