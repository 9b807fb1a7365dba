package form

// DiscountedNotAboveMRP цена со скидкой не больше MRP
func DiscountedNotAboveMRP(discountedField, mrpField string) CrossRule {
	return func(values map[string]interface{}) (string, string, bool) {
		discounted, ok := number(values[discountedField])
		if !ok {
			return "", "", false
		}
		mrp, ok := number(values[mrpField])
		if !ok {
			return "", "", false
		}
		if discounted > mrp {
			return discountedField, "Discounted price cannot exceed MRP", true
		}
		return "", "", false
	}
}

// PercentAtMost100 процентная скидка не больше 100
func PercentAtMost100(typeField, amountField, percentValue string) CrossRule {
	return func(values map[string]interface{}) (string, string, bool) {
		if values[typeField] != percentValue {
			return "", "", false
		}
		amount, ok := number(values[amountField])
		if ok && amount > 100 {
			return amountField, "Percentage discount cannot exceed 100", true
		}
		return "", "", false
	}
}

// DateNotBefore дата окончания не раньше даты начала
// Даты в формате YYYY-MM-DD сравниваются как строки
func DateNotBefore(endField, startField string) CrossRule {
	return func(values map[string]interface{}) (string, string, bool) {
		start, ok1 := values[startField].(string)
		end, ok2 := values[endField].(string)
		if !ok1 || !ok2 {
			return "", "", false
		}
		if end < start {
			return endField, "End date cannot be before start date", true
		}
		return "", "", false
	}
}

func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
