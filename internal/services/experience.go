package services

// ScoreExperience compares years of experience against a job's requirement.
// Over-qualification earns a bonus with diminishing returns (at most +30%),
// so the returned value may exceed 1.0; callers that fold it into a weighted
// total cap it at 1.3. Severe under-qualification (below half the required
// years) is penalized harder than a mild shortfall.
func ScoreExperience(resumeYears, requiredYears float64) float64 {
	if requiredYears <= 0 {
		// No experience requirement specified.
		return 1.0
	}

	if resumeYears >= requiredYears {
		bonus := (resumeYears - requiredYears) * 0.1
		if bonus > 0.3 {
			bonus = 0.3
		}
		return 1.0 + bonus
	}

	ratio := resumeYears / requiredYears
	if ratio < 0.5 {
		return ratio * 0.8
	}
	return ratio
}
