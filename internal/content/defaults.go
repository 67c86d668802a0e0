package content

// Default documents written for any section whose file is missing, so a
// fresh checkout serves a populated page straight away.

func defaultModules() []Module {
	return []Module{
		{
			ID:    1,
			Title: "Модуль 1: Основы программирования",
			Semesters: []Semester{
				{
					ID:    1,
					Title: "Семестр 1",
					Labs: []Lab{
						{ID: 1, Title: "ЛР1: Введение в алгоритмы", Link: "#"},
						{ID: 2, Title: "ЛР2: Основы Python", Link: "#"},
						{ID: 3, Title: "ЛР3: Структуры данных", Link: "#"},
					},
				},
			},
		},
	}
}

func defaultThesis() Thesis {
	return Thesis{
		Title:        "Дипломная работа",
		Topic:        "Разработка веб-приложения для управления учебными проектами",
		Description:  "Моя дипломная работа посвящена созданию современного веб-приложения для управления учебными проектами студентов.",
		PreviewImage: "/thesis-preview.jpg",
		Link:         "#",
		KeyFeatures: []string{
			"Анализ требований",
			"Проектирование архитектуры",
			"Реализация основных модулей",
			"Тестирование и оптимизация",
		},
	}
}

func defaultCourseworks() []Coursework {
	return []Coursework{
		{
			ID:           1,
			Title:        "Курсовая работа по базам данных",
			Semester:     "Семестр 3",
			Description:  "Разработка системы управления учебными проектами с использованием реляционных баз данных.",
			Link:         "#",
			Technologies: []string{"PostgreSQL", "SQL", "Python"},
		},
	}
}

func defaultPracticals() []Practical {
	return []Practical{
		{
			ID:          1,
			Title:       "Практические работы по программированию",
			Semester:    "Семестр 1-2",
			Description: "Коллекция практических работ по основам программирования.",
			Link:        "#",
			Items: []string{
				"Практика 1: Основы Python",
				"Практика 2: Работа с файлами",
				"Практика 3: Алгоритмы сортировки",
			},
		},
	}
}

func defaultDoc(sec Section) any {
	switch sec {
	case SectionModules:
		return defaultModules()
	case SectionThesis:
		return defaultThesis()
	case SectionCourseworks:
		return defaultCourseworks()
	case SectionPracticals:
		return defaultPracticals()
	}
	return nil
}

// EnsureDefaults writes the default document for every section whose file
// is missing and returns the sections it seeded. Existing files are never
// touched.
func EnsureDefaults(store *Store) ([]Section, error) {
	var seeded []Section
	for _, sec := range Sections() {
		if store.Exists(sec) {
			continue
		}
		if err := store.WriteDoc(sec, defaultDoc(sec)); err != nil {
			return seeded, err
		}
		seeded = append(seeded, sec)
	}
	return seeded, nil
}
