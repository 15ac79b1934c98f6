// Package chip groups one package per supported STM32 family.
//
// Each family package declares only the peripherals that family has, with
// its register addresses and clock/reset bits. Asking a family for a
// peripheral it lacks does not compile, and a firmware build (tag
// baremetal) compiles only the package of its own family tag.
package chip
