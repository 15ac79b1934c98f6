//go:build !(stm32f3 || stm32f4 || stm32l4 || stm32g0 || stm32g4 || stm32l5 || stm32h7)

package platform

// Family is empty when no family tag is set.
const Family = ""
