// Пакет scheduling — чистое ядро планировщика ресурсов: генерация кодов,
// валидация входных данных, поиск конфликтов, расчёт доступности и загрузки.
//
// Все функции пакета — чистые: работают на снимках данных, переданных
// вызывающей стороной, ничего не мутируют и не ходят в БД. Транзакционную
// дисциплину (проверил -> вставил в одной транзакции) обеспечивает слой
// сервисов.
package scheduling

import (
	"fmt"
	"strconv"
	"strings"

	"scheduling-system/pkg/constants"
)

// GenerateResourceCode детерминированно собирает код ресурса:
// префикс типа + порядковый номер с ведущими нулями (PER0001, VEH0042).
func GenerateResourceCode(resourceType constants.ResourceType, sequence int) string {
	prefix := constants.ResourceTypePrefixes[resourceType]
	return fmt.Sprintf("%s%04d", prefix, sequence)
}

// NextSequence сканирует уже выданные коды и возвращает max(номер)+1 для
// данного типа, либо 1, если кодов ещё нет. Коды чужих типов и мусорные
// строки игнорируются.
//
// Вызывать только на консистентном срезе кодов: сервис ресурсов читает коды
// типа с блокировкой и вставляет новый код в той же транзакции, иначе два
// конкурентных создания получат одинаковый номер.
func NextSequence(existingCodes []string, resourceType constants.ResourceType) int {
	prefix := constants.ResourceTypePrefixes[resourceType]

	maxSeq := 0
	for _, code := range existingCodes {
		if !strings.HasPrefix(code, prefix) {
			continue
		}
		seq, err := strconv.Atoi(code[len(prefix):])
		if err != nil || seq <= 0 {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1
}
