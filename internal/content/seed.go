package content

// DefaultCatalog returns the built-in study set: 3 sections, 8 lessons,
// 10 road signs, 20 questions, and the starter glossary.
func DefaultCatalog() Catalog {
	return Catalog{
		Sections:  defaultSections(),
		Lessons:   defaultLessons(),
		Signs:     defaultSigns(),
		Questions: defaultQuestions(),
		Glossary:  defaultGlossary(),
	}
}

func defaultSections() []Section {
	return []Section{
		{ID: "sec1", Name: "إشارات المرور", Icon: "🚦", Order: 1},
		{ID: "sec2", Name: "قواعد الطريق", Icon: "🛣", Order: 2},
		{ID: "sec3", Name: "السلامة", Icon: "🛡", Order: 3},
	}
}

func defaultLessons() []Lesson {
	return []Lesson{
		{
			ID: "1", Title: "إشارات المرور الضوئية", TitleIt: "Semaforo",
			Category: "إشارات", SectionID: "sec1",
			Content: "الإشارة الضوئية (Semaforo) هي جهاز ينظم حركة المرور عند التقاطعات. الأحمر يعني قف تماماً، الأصفر يعني استعد للوقوف، والأخضر يعني يمكنك المرور بحذر.",
			Example: "عندما تكون الإشارة حمراء (Rosso) يجب أن تتوقف تماماً قبل خط الوقوف. إذا تجاوزتها ستحصل على مخالفة كبيرة.",
			Order:   1,
		},
		{
			ID: "2", Title: "حدود السرعة", TitleIt: "Limiti di velocità",
			Category: "قواعد", SectionID: "sec2",
			Content: "في إيطاليا توجد حدود سرعة محددة: داخل المدينة 50 كم/س، خارج المدينة 90 كم/س، الطريق السريع المزدوج 110 كم/س، الأوتوسترادا 130 كم/س.",
			Example: "إذا كنت تقود في مدينة روما، السرعة القصوى هي 50 كم/س. على الأوتوسترادا مثل A1 بين روما وميلانو، السرعة القصوى 130 كم/س.",
			Order:   2,
		},
		{
			ID: "3", Title: "أولوية المرور", TitleIt: "Precedenza",
			Category: "قواعد", SectionID: "sec2",
			Content: "الأولوية (Precedenza) تعني من يحق له المرور أولاً. القاعدة الأساسية: أعط الأولوية للقادم من يمينك إلا إذا كانت هناك إشارة تقول غير ذلك.",
			Example: "عند تقاطع بدون إشارات، إذا جاءت سيارة من يمينك يجب أن تتوقف وتتركها تمر أولاً.",
			Order:   3,
		},
		{
			ID: "4", Title: "المسافة الآمنة", TitleIt: "Distanza di sicurezza",
			Category: "سلامة", SectionID: "sec3",
			Content: "المسافة الآمنة (Distanza di sicurezza) هي المسافة التي يجب أن تتركها بينك وبين السيارة أمامك. تزداد كلما زادت السرعة أو كان الطريق مبللاً.",
			Example: "على سرعة 50 كم/س تحتاج مسافة 25 متر على الأقل. على سرعة 130 كم/س تحتاج أكثر من 100 متر.",
			Order:   4,
		},
		{
			ID: "5", Title: "التجاوز", TitleIt: "Sorpasso",
			Category: "قواعد", SectionID: "sec2",
			Content: "التجاوز (Sorpasso) يعني تخطي سيارة أمامك. يجب أن يتم من الجهة اليسرى فقط. ويمنع التجاوز عند المنعطفات والتقاطعات وممرات المشاة.",
			Example: "إذا أردت تجاوز شاحنة بطيئة، انظر في المرايا، أشر يساراً، تأكد أن الطريق خالٍ، ثم تجاوز من اليسار.",
			Order:   5,
		},
		{
			ID: "6", Title: "الوقوف والتوقف", TitleIt: "Sosta e Fermata",
			Category: "قواعد", SectionID: "sec2",
			Content: "التوقف (Fermata) هو وقوف مؤقت قصير. الوقوف (Sosta) هو ترك السيارة لفترة. هناك أماكن يمنع فيها الوقوف مثل التقاطعات والمنحنيات.",
			Example: "الخط الأصفر على الرصيف يعني ممنوع الوقوف. الخط الأزرق يعني موقف مدفوع. الخط الأبيض يعني موقف مجاني.",
			Order:   6,
		},
		{
			ID: "7", Title: "إشارات التحذير", TitleIt: "Segnali di pericolo",
			Category: "إشارات", SectionID: "sec1",
			Content: "إشارات التحذير (Segnali di pericolo) تكون مثلثة الشكل برأسها للأعلى وحافتها حمراء. تنبهك لخطر قادم مثل منعطف أو تقاطع.",
			Example: "إذا رأيت مثلث أحمر مع رسمة منعطف، يعني أمامك منعطف خطر. أبطئ السرعة واستعد.",
			Order:   7,
		},
		{
			ID: "8", Title: "حزام الأمان", TitleIt: "Cintura di sicurezza",
			Category: "سلامة", SectionID: "sec3",
			Content: "حزام الأمان (Cintura di sicurezza) إجباري لجميع الركاب في المقاعد الأمامية والخلفية. عدم ربطه يعرضك لمخالفة مالية.",
			Example: "قبل تشغيل السيارة، تأكد أن جميع الركاب ربطوا أحزمة الأمان. هذا إجباري وليس اختياري.",
			Order:   8,
		},
	}
}

func defaultSigns() []Sign {
	return []Sign{
		{ID: "1", Name: "قف", NameIt: "Stop", Category: SignProhibition,
			Description: "يجب التوقف تماماً عند هذه الإشارة وإعطاء الأولوية لجميع السيارات",
			RealExample: "ستجد هذه الإشارة عند التقاطعات الخطرة. توقف تماماً حتى لو لم تكن هناك سيارات"},
		{ID: "2", Name: "ممنوع الدخول", NameIt: "Divieto di accesso", Category: SignProhibition,
			Description: "يمنع دخول هذا الطريق من هذا الاتجاه",
			RealExample: "تراها عند مداخل الشوارع ذات الاتجاه الواحد من الجهة الخاطئة"},
		{ID: "3", Name: "أعط الأولوية", NameIt: "Dare precedenza", Category: SignWarning,
			Description: "يجب إبطاء السرعة وإعطاء الأولوية للسيارات القادمة",
			RealExample: "عند دخول دوار أو تقاطع فرعي مع طريق رئيسي"},
		{ID: "4", Name: "ممنوع التجاوز", NameIt: "Divieto di sorpasso", Category: SignProhibition,
			Description: "يمنع تجاوز أي سيارة في هذه المنطقة",
			RealExample: "على الطرق الجبلية والمنعطفات الخطرة حيث لا ترى الطريق أمامك"},
		{ID: "5", Name: "حد السرعة 50", NameIt: "Limite di velocità 50", Category: SignProhibition,
			Description: "السرعة القصوى المسموحة هي 50 كم/ساعة",
			RealExample: "داخل المدن والقرى. هذه السرعة القصوى في المناطق السكنية"},
		{ID: "6", Name: "طريق ذو أولوية", NameIt: "Strada con diritto di precedenza", Category: SignInformation,
			Description: "أنت على طريق له الأولوية على الطرق المتقاطعة",
			RealExample: "عندما ترى هذه الإشارة، السيارات في الشوارع الجانبية يجب أن تنتظرك"},
		{ID: "7", Name: "ممر مشاة", NameIt: "Attraversamento pedonale", Category: SignWarning,
			Description: "تنبيه: يوجد ممر مشاة قريب. أبطئ واستعد للتوقف",
			RealExample: "قرب المدارس والأسواق. يجب أن تتوقف إذا كان هناك شخص يريد العبور"},
		{ID: "8", Name: "اتجاه إجباري يمين", NameIt: "Direzione obbligatoria a destra", Category: SignObligation,
			Description: "يجب الانعطاف يميناً. لا يمكنك الذهاب مباشرة أو يساراً",
			RealExample: "عند بعض التقاطعات حيث يكون الاتجاه الوحيد المسموح هو اليمين"},
		{ID: "9", Name: "منطقة وقوف", NameIt: "Parcheggio", Category: SignInformation,
			Description: "يُسمح بالوقوف في هذه المنطقة",
			RealExample: "مواقف السيارات العامة والخاصة"},
		{ID: "10", Name: "منحنى خطر", NameIt: "Curva pericolosa", Category: SignWarning,
			Description: "تنبيه: منحنى خطر أمامك. أبطئ السرعة",
			RealExample: "على الطرق الجبلية حيث توجد منعطفات حادة"},
	}
}

func defaultQuestions() []Question {
	return []Question{
		{ID: "1", TextIt: "Il semaforo rosso obbliga a fermarsi.", TextAr: "الإشارة الحمراء تُلزمك بالتوقف.", Answer: true,
			Explanation: "نعم، الإشارة الحمراء تعني التوقف الكامل وعدم تجاوز خط الوقوف.",
			Category:    "إشارات", Difficulty: DifficultyEasy, LessonID: "1"},
		{ID: "2", TextIt: "Il limite di velocità in centro urbano è di 70 km/h.", TextAr: "حد السرعة داخل المدينة هو 70 كم/ساعة.", Answer: false,
			Explanation: "خطأ! حد السرعة داخل المدينة (centro urbano) هو 50 كم/ساعة وليس 70.",
			Category:    "قواعد", Difficulty: DifficultyEasy, LessonID: "2"},
		{ID: "3", TextIt: "Il sorpasso va effettuato a destra.", TextAr: "التجاوز يجب أن يتم من جهة اليمين.", Answer: false,
			Explanation: "خطأ! التجاوز يجب أن يتم دائماً من جهة اليسار (sinistra) وليس اليمين.",
			Category:    "قواعد", Difficulty: DifficultyEasy, LessonID: "5"},
		{ID: "4", TextIt: "La distanza di sicurezza deve aumentare con l'aumentare della velocità.", TextAr: "المسافة الآمنة يجب أن تزداد كلما زادت السرعة.", Answer: true,
			Explanation: "صحيح! كلما زادت سرعتك، تحتاج مسافة أكبر للتوقف، لذلك يجب زيادة المسافة الآمنة.",
			Category:    "سلامة", Difficulty: DifficultyMedium, LessonID: "4"},
		{ID: "5", TextIt: "Il segnale di stop obbliga a fermarsi e dare la precedenza.", TextAr: "إشارة الوقوف تُلزمك بالتوقف وإعطاء الأولوية.", Answer: true,
			Explanation: "صحيح! إشارة Stop تعني أنك يجب أن تتوقف تماماً وتعطي الأولوية لجميع السيارات.",
			Category:    "إشارات", Difficulty: DifficultyEasy, LessonID: "1", SignID: "1"},
		{ID: "6", TextIt: "È consentito superare i limiti di velocità in caso di emergenza.", TextAr: "يُسمح بتجاوز حدود السرعة في حالة الطوارئ.", Answer: false,
			Explanation: "خطأ! لا يُسمح أبداً بتجاوز حدود السرعة حتى في حالات الطوارئ. فقط سيارات الطوارئ المرخصة يمكنها ذلك.",
			Category:    "قواعد", Difficulty: DifficultyMedium, LessonID: "2"},
		{ID: "7", TextIt: "La patente di categoria B consente di guidare autoveicoli di massa complessiva non superiore a 3,5 t.", TextAr: "رخصة الفئة B تسمح بقيادة مركبات لا يزيد وزنها عن 3.5 طن.", Answer: true,
			Explanation: "صحيح! رخصة B تسمح بقيادة السيارات حتى 3.5 طن ومع 8 ركاب كحد أقصى بالإضافة للسائق.",
			Category:    "رخصة", Difficulty: DifficultyMedium},
		{ID: "8", TextIt: "In autostrada il limite massimo di velocità è di 150 km/h.", TextAr: "على الأوتوسترادا الحد الأقصى للسرعة هو 150 كم/ساعة.", Answer: false,
			Explanation: "خطأ! الحد الأقصى على الأوتوسترادا هو 130 كم/ساعة وليس 150.",
			Category:    "قواعد", Difficulty: DifficultyMedium, LessonID: "2"},
		{ID: "9", TextIt: "Il conducente deve sempre allacciare la cintura di sicurezza.", TextAr: "يجب على السائق دائماً ربط حزام الأمان.", Answer: true,
			Explanation: "صحيح! حزام الأمان إجباري لجميع الركاب في جميع المقاعد.",
			Category:    "سلامة", Difficulty: DifficultyEasy, LessonID: "8"},
		{ID: "10", TextIt: "È vietato usare il telefono cellulare durante la guida senza dispositivo vivavoce.", TextAr: "يمنع استخدام الهاتف أثناء القيادة بدون سماعة.", Answer: true,
			Explanation: "صحيح! استخدام الهاتف باليد أثناء القيادة ممنوع. يمكنك فقط استخدام السماعة أو البلوتوث.",
			Category:    "قواعد", Difficulty: DifficultyEasy},
		{ID: "11", TextIt: "Si può parcheggiare in doppia fila.", TextAr: "يمكنك الوقوف في صف مزدوج.", Answer: false,
			Explanation: "خطأ! الوقوف في صف مزدوج (doppia fila) ممنوع دائماً لأنه يعيق حركة المرور.",
			Category:    "قواعد", Difficulty: DifficultyEasy, LessonID: "6"},
		{ID: "12", TextIt: "Il tasso alcolemico massimo consentito per i neopatentati è 0 g/l.", TextAr: "نسبة الكحول المسموحة للسائقين الجدد هي 0.", Answer: true,
			Explanation: "صحيح! السائقون الجدد (أقل من 3 سنوات) يجب أن تكون نسبة الكحول صفر تماماً.",
			Category:    "قواعد", Difficulty: DifficultyHard},
		{ID: "13", TextIt: "Il segnale triangolare con il vertice verso l'alto indica pericolo.", TextAr: "الإشارة المثلثة برأسها للأعلى تشير إلى خطر.", Answer: true,
			Explanation: "صحيح! المثلث برأسه للأعلى مع حافة حمراء يعني إشارة تحذير من خطر.",
			Category:    "إشارات", Difficulty: DifficultyEasy, LessonID: "7"},
		{ID: "14", TextIt: "La precedenza a destra vale anche nelle rotatorie.", TextAr: "أولوية اليمين تسري أيضاً في الدوارات.", Answer: false,
			Explanation: "خطأ! في الدوارات عادةً تكون الأولوية للسيارات داخل الدوار.",
			Category:    "قواعد", Difficulty: DifficultyHard, LessonID: "3"},
		{ID: "15", TextIt: "I pneumatici invernali sono obbligatori dal 15 novembre al 15 aprile.", TextAr: "الإطارات الشتوية إجبارية من 15 نوفمبر إلى 15 أبريل.", Answer: true,
			Explanation: "صحيح! في العديد من الطرق الإيطالية، الإطارات الشتوية أو السلاسل إجبارية في هذه الفترة.",
			Category:    "سلامة", Difficulty: DifficultyMedium},
		{ID: "16", TextIt: "Il casco è obbligatorio solo per il conducente del motociclo.", TextAr: "الخوذة إجبارية فقط لسائق الدراجة النارية.", Answer: false,
			Explanation: "خطأ! الخوذة إجبارية لكل من السائق والراكب على الدراجة النارية.",
			Category:    "سلامة", Difficulty: DifficultyMedium},
		{ID: "17", TextIt: "L'ABS impedisce il bloccaggio delle ruote in frenata.", TextAr: "نظام ABS يمنع انغلاق العجلات عند الفرملة.", Answer: true,
			Explanation: "صحيح! نظام ABS يمنع العجلات من الانغلاق عند الفرملة القوية مما يساعد في الحفاظ على السيطرة.",
			Category:    "سلامة", Difficulty: DifficultyMedium},
		{ID: "18", TextIt: "È consentito trasportare bambini senza seggiolino se il viaggio è breve.", TextAr: "يُسمح بنقل الأطفال بدون كرسي أطفال إذا كانت الرحلة قصيرة.", Answer: false,
			Explanation: "خطأ! كرسي الأطفال إجباري دائماً بغض النظر عن طول الرحلة.",
			Category:    "سلامة", Difficulty: DifficultyMedium},
		{ID: "19", TextIt: "La strada extraurbana principale ha carreggiate separate.", TextAr: "الطريق الرئيسي خارج المدينة له مسارات منفصلة.", Answer: true,
			Explanation: "صحيح! الطريق الرئيسي خارج المدينة يتميز بمسارات منفصلة وحد سرعة 110 كم/س.",
			Category:    "قواعد", Difficulty: DifficultyHard},
		{ID: "20", TextIt: "Il conducente deve dare la precedenza ai pedoni sulle strisce pedonali.", TextAr: "يجب على السائق إعطاء الأولوية للمشاة على ممر المشاة.", Answer: true,
			Explanation: "صحيح! يجب دائماً إعطاء الأولوية للمشاة عند ممرات المشاة المخططة.",
			Category:    "قواعد", Difficulty: DifficultyEasy, LessonID: "3"},
	}
}

func defaultGlossary() []GlossaryItem {
	return []GlossaryItem{
		{ID: "1", TermIt: "Semaforo", TermAr: "إشارة ضوئية", Example: "Il semaforo è rosso = الإشارة حمراء", Category: "إشارات"},
		{ID: "2", TermIt: "Precedenza", TermAr: "أولوية المرور", Example: "Dare la precedenza = أعطِ الأولوية", Category: "قواعد"},
		{ID: "3", TermIt: "Sorpasso", TermAr: "التجاوز", Example: "Divieto di sorpasso = ممنوع التجاوز", Category: "قواعد"},
		{ID: "4", TermIt: "Velocità", TermAr: "السرعة", Example: "Limite di velocità = حد السرعة", Category: "قواعد"},
		{ID: "5", TermIt: "Patente", TermAr: "رخصة القيادة", Example: "Patente di guida = رخصة القيادة", Category: "عام"},
		{ID: "6", TermIt: "Conducente", TermAr: "السائق", Example: "Il conducente deve... = يجب على السائق...", Category: "عام"},
		{ID: "7", TermIt: "Pedone", TermAr: "مشاة / ماشي", Example: "Attraversamento pedonale = ممر المشاة", Category: "عام"},
		{ID: "8", TermIt: "Frenata", TermAr: "الفرملة", Example: "Spazio di frenata = مسافة الفرملة", Category: "سلامة"},
	}
}
