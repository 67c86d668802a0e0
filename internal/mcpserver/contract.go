package mcpserver

// SectionFormatContract describes the canonical JSON shapes that LLM
// consumers must follow when updating portfolio documents.
const SectionFormatContract = `# Vitrina Section Format Contract

Every portfolio document is a whole-file JSON replacement: an update
sends the complete document, never a patch.

## Sections

| key | file | shape |
|---|---|---|
| modules | education_modules.json | array of education modules |
| thesis | thesis.json | single object |
| courseworks | courseworks.json | array of courseworks |
| practicals | practical_works.json | array of practical work groups |

## modules (education_modules.json)

` + "```" + `json
[
  {
    "id": 1,
    "title": "Модуль 1: Основы программирования",
    "semesters": [
      {
        "id": 1,
        "title": "Семестр 1",
        "labs": [
          {
            "id": 1,
            "title": "ЛР1: Введение в алгоритмы",
            "link": "https://github.com/username/lab1"
          }
        ]
      }
    ]
  }
]
` + "```" + `

## thesis (thesis.json)

` + "```" + `json
{
  "title": "Дипломная работа",
  "topic": "Разработка веб-приложения для управления проектами",
  "description": "Полнофункциональное веб-приложение с современным стеком технологий",
  "previewImage": "/thesis-preview.jpg",
  "link": "https://github.com/username/thesis-project",
  "keyFeatures": [
    "Аутентификация и авторизация",
    "REST API"
  ]
}
` + "```" + `

## courseworks (courseworks.json)

` + "```" + `json
[
  {
    "id": 1,
    "title": "Курсовая работа по базам данных",
    "semester": "Семестр 4",
    "description": "Проектирование и реализация реляционной базы данных",
    "link": "https://github.com/username/coursework-db",
    "technologies": ["PostgreSQL", "SQL", "Python"]
  }
]
` + "```" + `

## practicals (practical_works.json)

` + "```" + `json
[
  {
    "id": 1,
    "title": "Практические работы по программированию",
    "semester": "Семестр 2",
    "description": "Серия практических заданий",
    "link": "https://github.com/username/practicals",
    "items": [
      "Работа с файловой системой",
      "Многопоточное программирование"
    ]
  }
]
` + "```" + `

## Rules

1. **Field names are exactly as shown.** camelCase where shown
   (` + "`" + `previewImage` + "`" + `, ` + "`" + `keyFeatures` + "`" + `), lowercase otherwise.
2. **ids** are small positive ordinals, unique within their own array.
3. **Order matters.** Items render on the page in array order.
4. **Emptying a section** is valid: an empty array (or an all-empty
   thesis object) removes the section from the rendered page.
5. **Values** may use any language including Cyrillic. Documents are
   stored as UTF-8 without escaping.
6. **links** are absolute URLs or empty strings.
`
