package vocab

// Defaults returns the compiled-in vocabulary. The gate list intentionally
// carries only whole health terms such as "eating" and "food" rather than
// the bare fragment "eat", which matches inside unrelated words like
// "weather".
func Defaults() *Config {
	return &Config{
		Classifier: ClassifierTerms{
			Prescription: []string{
				"rx", "prescription", "tablet", "capsule", "syrup",
				"dosage", "take", "times a day", "after food",
			},
			LabReport: []string{
				"hemoglobin", "glucose", "cholesterol", "creatinine", "urea",
				"wbc", "rbc", "platelet", "test result", "lab report",
			},
			XRayText: []string{
				"x-ray", "xray", "radiograph", "chest pa", "bone scan",
			},
			XRayFilename: []string{
				"xray", "x-ray", "scan",
			},
			Wound: []string{
				"wound", "injury", "burn", "laceration", "abrasion",
			},
			Discharge: []string{
				"discharge", "summary", "admitted", "diagnosis", "treatment given",
			},
		},
		Gate: GateTerms{
			Terms: []string{
				"hospital", "hospitel", "medicine", "medicines", "medison",
				"medical", "health", "healthcare", "clinic", "pharmacy",
				"disease", "diseases", "diabetis", "symptom", "symptoms",
				"sysmptom", "diagnosis", "treatment", "therapy", "cure",
				"doctor", "docter", "physician", "surgeon", "specialist",
				"consultation", "appointment", "referral", "nurse", "patient",
				"wellness", "emergency", "ambulance", "icu", "ward",
				"laboratory", "lab report", "blood", "urine", "test result",
				"xray", "x-ray", "scan", "mri", "ultrasound", "ecg", "ekg",
				"eeg", "biopsy", "screening", "prescription", "drug", "drugs",
				"tablet", "tablets", "pill", "pills", "capsule", "capsules",
				"syrup", "injection", "injecion", "dosage", "insulin",
				"antibiotic", "antiviral", "antifungal", "steroid",
				"pain", "painkiller", "fever", "feaver", "ferver", "cough",
				"headache", "hedache", "migraine", "injury", "wound", "burn",
				"surgery", "operation", "fracture", "sprain", "rehab",
				"diabetes", "cancer", "canser", "heart", "hart", "cardiac",
				"hypertension", "cholesterol", "kidney", "kidny", "renal",
				"liver", "hepatic", "lung", "pulmonary", "brain", "neuro",
				"bone", "muscle", "joint", "asthma", "arthritis", "stroke",
				"paralysis", "epilepsy", "anemia", "jaundice", "tuberculosis",
				"pneumonia", "infection", "virus", "bacteria", "covid",
				"corona", "flu", "malaria", "dengue", "allergy", "rash",
				"itching", "swelling", "inflammation", "vomit", "vomiting",
				"nausea", "nausia", "diarrhea", "constipation", "stomach",
				"stomoch", "digestion", "heartburn", "ulcer",
				"mental health", "stress", "anxiety", "depression", "panic",
				"sleep", "insomnia", "diet", "nutrition", "food", "eating",
				"calorie", "protein", "vitamin", "mineral", "supplement",
				"hydration", "exercise", "workout", "gym", "fitness", "yoga",
				"weight", "bmi", "lifestyle", "obesity",
				"pregnancy", "pregnant", "pregnent", "delivery", "menstrual",
				"periods", "fertility", "baby", "vaccine", "vaccin",
				"immunization", "immunity", "first aid", "cpr", "trauma",
				"accident", "bleeding", "bandage", "overdose",
				"ayurveda", "ayurvedic", "homeopathy", "naturopathy",
				"herbal", "remedy", "prevention", "checkup", "followup",
				"precaution", "precuation", "side effect",
				"hemoglobin", "thyroid", "blood sugar", "blood pressure",
				"skin", "dizzy", "fatigue", "sore throat", "sanitizer",
				"dental", "teeth", "vision", "eyes",
				"is it safe", "can i take",
			},
		},
		Refusals: map[string]string{
			"en": "I'm here to help with medical, health, and diet-related questions only. I can assist with information about hospitals, medicines, diseases, symptoms, lab reports, wellness, diet, and exercise. What health topic would you like to know about?",
			"hi": "मैं केवल चिकित्सा, स्वास्थ्य और आहार से जुड़े सवालों में मदद कर सकता हूँ। मैं अस्पतालों, दवाओं, बीमारियों, लक्षणों, लैब रिपोर्ट, सेहत, आहार और व्यायाम की जानकारी दे सकता हूँ। आप किस स्वास्थ्य विषय के बारे में जानना चाहेंगे?",
			"te": "నేను వైద్యం, ఆరోగ్యం మరియు ఆహారానికి సంబంధించిన ప్రశ్నలకు మాత్రమే సహాయం చేయగలను. ఆసుపత్రులు, మందులు, వ్యాధులు, లక్షణాలు, ల్యాబ్ రిపోర్టులు, ఆరోగ్యం, ఆహారం మరియు వ్యాయామం గురించి సమాచారం ఇవ్వగలను. మీరు ఏ ఆరోగ్య విషయం గురించి తెలుసుకోవాలనుకుంటున్నారు?",
		},
	}
}
